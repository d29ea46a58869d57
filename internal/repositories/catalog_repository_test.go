package repositories

import (
	"database/sql"
	"database/sql/driver"
	"io"
	"testing"
)

// Стаб-драйвер: отдаёт заранее заданные строки в том виде, в каком их
// возвращает драйвер Postgres для целочисленных колонок (int64).
// Числовые поля каталога хранятся как INTEGER и обязаны сканироваться
// в int-поля моделей без ошибок конвертации.

type stubDriver struct{ rows *stubRows }

type stubConn struct{ rows *stubRows }

type stubStmt struct{ rows *stubRows }

type stubRows struct {
	cols []string
	data [][]driver.Value
	i    int
}

func (d *stubDriver) Open(string) (driver.Conn, error) { return &stubConn{rows: d.rows}, nil }

func (c *stubConn) Prepare(string) (driver.Stmt, error) { return &stubStmt{rows: c.rows}, nil }
func (c *stubConn) Close() error                        { return nil }
func (c *stubConn) Begin() (driver.Tx, error)           { return nil, driver.ErrSkip }

func (s *stubStmt) Close() error                               { return nil }
func (s *stubStmt) NumInput() int                              { return -1 }
func (s *stubStmt) Exec([]driver.Value) (driver.Result, error) { return driver.RowsAffected(1), nil }
func (s *stubStmt) Query([]driver.Value) (driver.Rows, error) {
	s.rows.i = 0
	return s.rows, nil
}

func (r *stubRows) Columns() []string { return r.cols }
func (r *stubRows) Close() error      { return nil }
func (r *stubRows) Next(dest []driver.Value) error {
	if r.i >= len(r.data) {
		return io.EOF
	}
	copy(dest, r.data[r.i])
	r.i++
	return nil
}

func openStubDB(t *testing.T, name string, rows *stubRows) *sql.DB {
	t.Helper()
	sql.Register(name, &stubDriver{rows: rows})
	db, err := sql.Open(name, "")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCourseScanIntegerColumns(t *testing.T) {
	rows := &stubRows{
		cols: []string{"id", "category_id", "education_centre_id", "name", "description", "price_month", "education_type", "duration_months"},
		data: [][]driver.Value{
			{int64(1), int64(2), int64(3), "Go с нуля", "Основы языка", int64(45000), "offline", int64(6)},
		},
	}
	repo := NewCourseRepository(openStubDB(t, "stub-courses", rows))

	c, err := repo.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if c.PriceMonth != 45000 {
		t.Errorf("price_month = %d, want 45000", c.PriceMonth)
	}
	if c.DurationMonths != 6 {
		t.Errorf("duration_months = %d, want 6", c.DurationMonths)
	}

	list, err := repo.Filter(CourseFilter{}, 10, 0)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(list) != 1 || list[0].PriceMonth != 45000 {
		t.Fatalf("Filter: got %+v, want one course with price_month 45000", list)
	}
}

func TestCentreScanIntegerColumns(t *testing.T) {
	rows := &stubRows{
		cols: []string{"id", "category_id", "name", "description", "rate", "experience"},
		data: [][]driver.Value{
			{int64(1), int64(2), "Alpha School", "", int64(5), int64(7)},
		},
	}
	repo := NewCentreRepository(openStubDB(t, "stub-centres", rows))

	c, err := repo.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if c.Rate != 5 {
		t.Errorf("rate = %d, want 5", c.Rate)
	}

	list, err := repo.List(0, 0, 0, "", 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Experience != 7 {
		t.Fatalf("List: got %+v, want one centre with experience 7", list)
	}
}
