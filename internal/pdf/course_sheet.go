package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// Generator — интерфейс (удобно мокать в тестах)
type Generator interface {
	GenerateCourseSheet(data CourseSheetData) (string, error)
}

// SheetGenerator — реализация
type SheetGenerator struct {
	RootDir  string // корень хранения, например "./files"
	FontPath string // путь до TTF с кириллицей, например "assets/fonts/DejaVuSans.ttf"
	fontName string
}

type CourseSheetData struct {
	CourseID       int
	Name           string
	Description    string
	CentreName     string
	PriceMonth     int
	EducationType  string
	DurationMonths int
	Filename       string // имя файла (без путей); если пусто — сгенерируем
}

func NewSheetGenerator(rootDir, fontPath string) *SheetGenerator {
	return &SheetGenerator{
		RootDir:  filepath.Clean(rootDir),
		FontPath: fontPath,
		fontName: "DejaVu",
	}
}

// GenerateCourseSheet — печатная карточка курса.
func (g *SheetGenerator) GenerateCourseSheet(data CourseSheetData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("course_%d.pdf", data.CourseID)
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(data.Name, false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	g.addUTF8Font(pdf)
	pdf.AddPage()

	// ===== Заголовок
	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, data.Name, "", 1, "C", false, 0, "")
	if data.CentreName != "" {
		pdf.SetFont(g.fontName, "", 12)
		pdf.CellFormat(0, 7, data.CentreName, "", 1, "C", false, 0, "")
	}
	g.hr(pdf)
	pdf.Ln(3)

	// ===== Условия обучения
	g.sectionTitle(pdf, "Условия обучения")
	g.kvLine(pdf, "Формат", data.EducationType)
	g.kvLine(pdf, "Цена в месяц", fmt.Sprintf("%d", data.PriceMonth))
	if data.DurationMonths > 0 {
		g.kvLine(pdf, "Длительность", fmt.Sprintf("%d мес.", data.DurationMonths))
	}
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Описание
	if data.Description != "" {
		g.sectionTitle(pdf, "О курсе")
		pdf.SetFont(g.fontName, "", 11)
		pdf.MultiCell(0, 6, data.Description, "", "L", false)
	}

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

// ===== helpers =====

func (g *SheetGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	filename = filepath.Base(filename) // безопасность
	return filepath.Join(g.RootDir, filename), nil
}

func (g *SheetGenerator) addUTF8Font(pdf *gofpdf.Fpdf) {
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
}

func (g *SheetGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *SheetGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *SheetGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}
