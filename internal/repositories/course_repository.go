package repositories

import (
	"database/sql"
	"fmt"
	"log"

	"coursehub/internal/models"
)

type CourseRepository struct {
	db *sql.DB
}

func NewCourseRepository(db *sql.DB) *CourseRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(c *models.Course) error {
	const query = `
		INSERT INTO courses (category_id, education_centre_id, name, description, price_month, education_type, duration_months)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.db.QueryRow(query,
		c.CategoryID, c.EducationCentreID, c.Name, c.Description,
		c.PriceMonth, c.EducationType, c.DurationMonths,
	).Scan(&c.ID)
}

func (r *CourseRepository) GetByID(id int) (*models.Course, error) {
	const query = `
		SELECT id, category_id, education_centre_id, name, description, price_month, education_type, duration_months
		FROM courses
		WHERE id=$1
	`
	c := &models.Course{}
	err := r.db.QueryRow(query, id).Scan(
		&c.ID, &c.CategoryID, &c.EducationCentreID, &c.Name, &c.Description,
		&c.PriceMonth, &c.EducationType, &c.DurationMonths,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CourseRepository) Update(c *models.Course) error {
	const query = `
		UPDATE courses
		SET category_id=$1, education_centre_id=$2, name=$3, description=$4,
		    price_month=$5, education_type=$6, duration_months=$7
		WHERE id=$8
	`
	_, err := r.db.Exec(query,
		c.CategoryID, c.EducationCentreID, c.Name, c.Description,
		c.PriceMonth, c.EducationType, c.DurationMonths, c.ID,
	)
	return err
}

func (r *CourseRepository) Delete(id int) error {
	const query = `DELETE FROM courses WHERE id=$1`
	_, err := r.db.Exec(query, id)
	return err
}

type CourseFilter struct {
	CategoryID    int
	CentreID      int
	PriceMonth    int
	MaxPriceMonth int
	EducationType string
	Search        string
	SortBy        string
	Order         string
}

// Filter — фильтрация и сортировка каталога курсов.
// SortBy валидируем по белому списку, иначе подставляем name.
func (r *CourseRepository) Filter(f CourseFilter, limit, offset int) ([]models.Course, error) {
	sortBy := f.SortBy
	allowed := map[string]bool{"name": true, "price_month": true, "duration_months": true}
	if !allowed[sortBy] {
		sortBy = "name"
	}
	order := f.Order
	if order != "asc" && order != "desc" {
		order = "asc"
	}

	query := `
		SELECT id, category_id, education_centre_id, name, description, price_month, education_type, duration_months
		FROM courses
		WHERE 1=1`
	args := []interface{}{}
	i := 1

	if f.CategoryID > 0 {
		query += fmt.Sprintf(" AND category_id = $%d", i)
		args = append(args, f.CategoryID)
		i++
	}
	if f.CentreID > 0 {
		query += fmt.Sprintf(" AND education_centre_id = $%d", i)
		args = append(args, f.CentreID)
		i++
	}
	if f.PriceMonth > 0 {
		query += fmt.Sprintf(" AND price_month = $%d", i)
		args = append(args, f.PriceMonth)
		i++
	}
	if f.MaxPriceMonth > 0 {
		query += fmt.Sprintf(" AND price_month <= $%d", i)
		args = append(args, f.MaxPriceMonth)
		i++
	}
	if f.EducationType != "" {
		query += fmt.Sprintf(" AND education_type = $%d", i)
		args = append(args, f.EducationType)
		i++
	}
	if f.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%')", i, i)
		args = append(args, f.Search)
		i++
	}
	query += fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", sortBy, order, i, i+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(
			&c.ID, &c.CategoryID, &c.EducationCentreID, &c.Name, &c.Description,
			&c.PriceMonth, &c.EducationType, &c.DurationMonths,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
