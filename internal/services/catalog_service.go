package services

import (
	"errors"

	"coursehub/internal/models"
	"coursehub/internal/repositories"
)

var ErrBadEducationType = errors.New("unknown education type")

var educationTypes = map[string]bool{"offline": true, "online": true, "hybrid": true}

type CategoryService struct {
	Repo *repositories.CategoryRepository
}

func NewCategoryService(repo *repositories.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) Create(c *models.Category) error { return s.Repo.Create(c) }
func (s *CategoryService) Update(c *models.Category) error { return s.Repo.Update(c) }
func (s *CategoryService) Delete(id int) error             { return s.Repo.Delete(id) }

func (s *CategoryService) GetByID(id int) (*models.Category, error) { return s.Repo.GetByID(id) }

func (s *CategoryService) List(name, search string, limit, offset int) ([]models.Category, error) {
	return s.Repo.List(name, search, limit, offset)
}

type SkillService struct {
	Repo *repositories.SkillRepository
}

func NewSkillService(repo *repositories.SkillRepository) *SkillService {
	return &SkillService{Repo: repo}
}

func (s *SkillService) Create(sk *models.Skill) error { return s.Repo.Create(sk) }
func (s *SkillService) Update(sk *models.Skill) error { return s.Repo.Update(sk) }
func (s *SkillService) Delete(id int) error           { return s.Repo.Delete(id) }

func (s *SkillService) GetByID(id int) (*models.Skill, error) { return s.Repo.GetByID(id) }

func (s *SkillService) List(categoryID int, name, search string, limit, offset int) ([]models.Skill, error) {
	return s.Repo.List(categoryID, name, search, limit, offset)
}

type CentreService struct {
	Repo *repositories.CentreRepository
}

func NewCentreService(repo *repositories.CentreRepository) *CentreService {
	return &CentreService{Repo: repo}
}

func (s *CentreService) Create(c *models.EducationCentre) error { return s.Repo.Create(c) }
func (s *CentreService) Update(c *models.EducationCentre) error { return s.Repo.Update(c) }
func (s *CentreService) Delete(id int) error                    { return s.Repo.Delete(id) }

func (s *CentreService) GetByID(id int) (*models.EducationCentre, error) { return s.Repo.GetByID(id) }

func (s *CentreService) List(categoryID, rate, experience int, search string, limit, offset int) ([]models.EducationCentre, error) {
	return s.Repo.List(categoryID, rate, experience, search, limit, offset)
}

type BranchService struct {
	Repo *repositories.BranchRepository
}

func NewBranchService(repo *repositories.BranchRepository) *BranchService {
	return &BranchService{Repo: repo}
}

func (s *BranchService) Create(b *models.Branch) error { return s.Repo.Create(b) }
func (s *BranchService) Update(b *models.Branch) error { return s.Repo.Update(b) }
func (s *BranchService) Delete(id int) error           { return s.Repo.Delete(id) }

func (s *BranchService) GetByID(id int) (*models.Branch, error) { return s.Repo.GetByID(id) }

func (s *BranchService) List(centreID int, search string, limit, offset int) ([]models.Branch, error) {
	return s.Repo.List(centreID, search, limit, offset)
}

type CourseService struct {
	Repo *repositories.CourseRepository
}

func NewCourseService(repo *repositories.CourseRepository) *CourseService {
	return &CourseService{Repo: repo}
}

func (s *CourseService) Create(c *models.Course) error {
	if c.EducationType == "" {
		c.EducationType = "offline"
	}
	if !educationTypes[c.EducationType] {
		return ErrBadEducationType
	}
	return s.Repo.Create(c)
}

func (s *CourseService) Update(c *models.Course) error {
	if !educationTypes[c.EducationType] {
		return ErrBadEducationType
	}
	return s.Repo.Update(c)
}

func (s *CourseService) Delete(id int) error { return s.Repo.Delete(id) }

func (s *CourseService) GetByID(id int) (*models.Course, error) { return s.Repo.GetByID(id) }

func (s *CourseService) Filter(f repositories.CourseFilter, limit, offset int) ([]models.Course, error) {
	return s.Repo.Filter(f, limit, offset)
}
