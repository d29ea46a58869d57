package repositories

import (
	"database/sql"
	"fmt"
	"log"

	"coursehub/internal/models"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(c *models.Category) error {
	const query = `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	return r.db.QueryRow(query, c.Name).Scan(&c.ID)
}

func (r *CategoryRepository) GetByID(id int) (*models.Category, error) {
	const query = `SELECT id, name FROM categories WHERE id=$1`
	c := &models.Category{}
	if err := r.db.QueryRow(query, id).Scan(&c.ID, &c.Name); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CategoryRepository) Update(c *models.Category) error {
	const query = `UPDATE categories SET name=$1 WHERE id=$2`
	_, err := r.db.Exec(query, c.Name, c.ID)
	return err
}

func (r *CategoryRepository) Delete(id int) error {
	const query = `DELETE FROM categories WHERE id=$1`
	_, err := r.db.Exec(query, id)
	return err
}

// List — фильтр по точному имени и подстрочный поиск (?name= / ?search=).
func (r *CategoryRepository) List(name, search string, limit, offset int) ([]models.Category, error) {
	query := `SELECT id, name FROM categories WHERE 1=1`
	args := []interface{}{}
	i := 1

	if name != "" {
		query += fmt.Sprintf(" AND name = $%d", i)
		args = append(args, name)
		i++
	}
	if search != "" {
		query += fmt.Sprintf(" AND name ILIKE '%%' || $%d || '%%'", i)
		args = append(args, search)
		i++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
