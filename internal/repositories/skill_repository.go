package repositories

import (
	"database/sql"
	"fmt"
	"log"

	"coursehub/internal/models"
)

type SkillRepository struct {
	db *sql.DB
}

func NewSkillRepository(db *sql.DB) *SkillRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &SkillRepository{db: db}
}

func (r *SkillRepository) Create(s *models.Skill) error {
	const query = `INSERT INTO skills (category_id, name) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRow(query, s.CategoryID, s.Name).Scan(&s.ID)
}

func (r *SkillRepository) GetByID(id int) (*models.Skill, error) {
	const query = `SELECT id, category_id, name FROM skills WHERE id=$1`
	s := &models.Skill{}
	if err := r.db.QueryRow(query, id).Scan(&s.ID, &s.CategoryID, &s.Name); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SkillRepository) Update(s *models.Skill) error {
	const query = `UPDATE skills SET category_id=$1, name=$2 WHERE id=$3`
	_, err := r.db.Exec(query, s.CategoryID, s.Name, s.ID)
	return err
}

func (r *SkillRepository) Delete(id int) error {
	const query = `DELETE FROM skills WHERE id=$1`
	_, err := r.db.Exec(query, id)
	return err
}

// List — фильтры ?category= и ?name=, поиск по имени навыка и имени категории.
func (r *SkillRepository) List(categoryID int, name, search string, limit, offset int) ([]models.Skill, error) {
	query := `
		SELECT s.id, s.category_id, s.name
		FROM skills s
		JOIN categories c ON c.id = s.category_id
		WHERE 1=1`
	args := []interface{}{}
	i := 1

	if categoryID > 0 {
		query += fmt.Sprintf(" AND s.category_id = $%d", i)
		args = append(args, categoryID)
		i++
	}
	if name != "" {
		query += fmt.Sprintf(" AND s.name = $%d", i)
		args = append(args, name)
		i++
	}
	if search != "" {
		query += fmt.Sprintf(" AND (s.name ILIKE '%%' || $%d || '%%' OR c.name ILIKE '%%' || $%d || '%%')", i, i)
		args = append(args, search)
		i++
	}
	query += fmt.Sprintf(" ORDER BY s.name LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Skill
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
