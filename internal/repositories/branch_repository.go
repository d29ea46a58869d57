package repositories

import (
	"database/sql"
	"fmt"
	"log"

	"coursehub/internal/models"
)

type BranchRepository struct {
	db *sql.DB
}

func NewBranchRepository(db *sql.DB) *BranchRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &BranchRepository{db: db}
}

func (r *BranchRepository) Create(b *models.Branch) error {
	const query = `
		INSERT INTO branches (education_centre_id, name, address, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRow(query, b.EducationCentreID, b.Name, b.Address, b.Phone).Scan(&b.ID)
}

func (r *BranchRepository) GetByID(id int) (*models.Branch, error) {
	const query = `
		SELECT id, education_centre_id, name, address, COALESCE(phone,'')
		FROM branches
		WHERE id=$1
	`
	b := &models.Branch{}
	if err := r.db.QueryRow(query, id).Scan(&b.ID, &b.EducationCentreID, &b.Name, &b.Address, &b.Phone); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BranchRepository) Update(b *models.Branch) error {
	const query = `
		UPDATE branches
		SET education_centre_id=$1, name=$2, address=$3, phone=$4
		WHERE id=$5
	`
	_, err := r.db.Exec(query, b.EducationCentreID, b.Name, b.Address, b.Phone, b.ID)
	return err
}

func (r *BranchRepository) Delete(id int) error {
	const query = `DELETE FROM branches WHERE id=$1`
	_, err := r.db.Exec(query, id)
	return err
}

// List — фильтр ?education_centre=, поиск по имени и адресу.
func (r *BranchRepository) List(centreID int, search string, limit, offset int) ([]models.Branch, error) {
	query := `
		SELECT id, education_centre_id, name, address, COALESCE(phone,'')
		FROM branches
		WHERE 1=1`
	args := []interface{}{}
	i := 1

	if centreID > 0 {
		query += fmt.Sprintf(" AND education_centre_id = $%d", i)
		args = append(args, centreID)
		i++
	}
	if search != "" {
		query += fmt.Sprintf(" AND (name ILIKE '%%' || $%d || '%%' OR address ILIKE '%%' || $%d || '%%')", i, i)
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

	var out []models.Branch
	for rows.Next() {
		var b models.Branch
		if err := rows.Scan(&b.ID, &b.EducationCentreID, &b.Name, &b.Address, &b.Phone); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
