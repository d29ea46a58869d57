package repositories

import (
	"database/sql"
	"fmt"
	"log"

	"coursehub/internal/models"
)

type CentreRepository struct {
	db *sql.DB
}

func NewCentreRepository(db *sql.DB) *CentreRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &CentreRepository{db: db}
}

func (r *CentreRepository) Create(c *models.EducationCentre) error {
	const query = `
		INSERT INTO education_centres (category_id, name, description, rate, experience)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRow(query, c.CategoryID, c.Name, c.Description, c.Rate, c.Experience).Scan(&c.ID)
}

func (r *CentreRepository) GetByID(id int) (*models.EducationCentre, error) {
	const query = `
		SELECT id, category_id, name, description, rate, experience
		FROM education_centres
		WHERE id=$1
	`
	c := &models.EducationCentre{}
	err := r.db.QueryRow(query, id).Scan(&c.ID, &c.CategoryID, &c.Name, &c.Description, &c.Rate, &c.Experience)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CentreRepository) Update(c *models.EducationCentre) error {
	const query = `
		UPDATE education_centres
		SET category_id=$1, name=$2, description=$3, rate=$4, experience=$5
		WHERE id=$6
	`
	_, err := r.db.Exec(query, c.CategoryID, c.Name, c.Description, c.Rate, c.Experience, c.ID)
	return err
}

func (r *CentreRepository) Delete(id int) error {
	const query = `DELETE FROM education_centres WHERE id=$1`
	_, err := r.db.Exec(query, id)
	return err
}

// List — фильтры ?category=, ?rate=, ?experience=, поиск по имени и описанию.
func (r *CentreRepository) List(categoryID, rate, experience int, search string, limit, offset int) ([]models.EducationCentre, error) {
	query := `
		SELECT id, category_id, name, description, rate, experience
		FROM education_centres
		WHERE 1=1`
	args := []interface{}{}
	i := 1

	if categoryID > 0 {
		query += fmt.Sprintf(" AND category_id = $%d", i)
		args = append(args, categoryID)
		i++
	}
	if rate > 0 {
		query += fmt.Sprintf(" AND rate = $%d", i)
		args = append(args, rate)
		i++
	}
	if experience > 0 {
		query += fmt.Sprintf(" AND experience = $%d", i)
		args = append(args, experience)
		i++
	}
	if search != "" {
		query += fmt.Sprintf(" AND (name ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%')", i, i)
		args = append(args, search)
		i++
	}
	query += fmt.Sprintf(" ORDER BY rate DESC, name LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.EducationCentre
	for rows.Next() {
		var c models.EducationCentre
		if err := rows.Scan(&c.ID, &c.CategoryID, &c.Name, &c.Description, &c.Rate, &c.Experience); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
