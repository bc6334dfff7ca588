package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/katalvlaran/heat1d/heat"
)

const (
	pdfMargin     = 15.0 // mm
	pdfPageWidth  = 210.0
	pdfContent    = pdfPageWidth - 2*pdfMargin
	pdfLineHeight = 6.0
)

// Image is a rendered PNG placed in the PDF.
type Image struct {
	Name    string
	PNG     []byte
	Caption string
}

// Summary is everything the PDF report shows.
type Summary struct {
	Run    string
	Params heat.Params
	Result heat.Result
	Images []Image
}

// WritePDF renders s as a single-document A4 report.
func WritePDF(w io.Writer, s Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pdfContent, 10, "Heat run "+s.Run, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	p, r := s.Params, s.Result
	section(pdf, "Parameters")
	table(pdf, [][2]string{
		{"algorithm", r.Algorithm.String()},
		{"precision", r.Precision.String()},
		{"alpha", num(p.Alpha)},
		{"lenx", num(p.LenX)},
		{"dx (requested / used)", num(p.Dx) + " / " + num(r.Dx)},
		{"dt", num(p.Dt)},
		{"points", strconv.Itoa(r.Nx)},
		{"bc0 / bc1", num(p.BC0) + " / " + num(p.BC1)},
		{"initial condition", p.IC},
		{"stop", stopText(p, r)},
	})

	section(pdf, "Result")
	table(pdf, [][2]string{
		{"steps", strconv.Itoa(r.Steps)},
		{"simulated time", num(r.SimTime)},
		{"last L2 change", num(r.Change)},
		{"converged", strconv.FormatBool(r.Converged)},
		{"adds / mults / divs", fmt.Sprintf("%d / %d / %d", r.Counts.Adds, r.Counts.Mults, r.Counts.Divs)},
		{"bytes", strconv.FormatInt(r.Counts.Bytes, 10)},
		{"elapsed", r.Elapsed.String()},
	})

	for _, img := range s.Images {
		width := pdfContent
		height := width * plotHeight / plotWidth
		if pdf.GetY()+height+pdfLineHeight > 297-pdfMargin {
			pdf.AddPage()
		}
		pdf.RegisterImageOptionsReader(img.Name, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(img.PNG))
		y := pdf.GetY()
		pdf.ImageOptions(img.Name, pdfMargin, y, width, height, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pdf.SetY(y + height)
		if img.Caption != "" {
			pdf.SetFont("Arial", "I", 9)
			pdf.CellFormat(pdfContent, pdfLineHeight, img.Caption, "", 1, "C", false, 0, "")
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("report: pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report: pdf: %w", err)
	}

	return nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pdfContent, 8, title, "", 1, "L", false, 0, "")
}

func table(pdf *gofpdf.Fpdf, rows [][2]string) {
	key := pdfContent * 0.4
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(key, pdfLineHeight, row[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(pdfContent-key, pdfLineHeight, row[1], "1", 1, "L", false, 0, "")
	}
}

func stopText(p heat.Params, r heat.Result) string {
	if r.Stop == heat.StopThreshold {
		threshold := p.MinChange
		if p.MaxTime < 0 {
			threshold = p.MaxTime * p.MaxTime
		}
		return "L2 change < " + num(threshold)
	}

	return "t >= " + num(p.MaxTime)
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }

// Files names the artifacts Render writes.
const (
	SolutionFile = "solution.png"
	HistoryFile  = "history.png"
	ReportFile   = "report.pdf"
)

// Render writes the plots, and the PDF when withPDF is set, into dir and
// returns the written paths. A missing history (run without saving) skips
// the history plot.
func Render(dir string, s Summary, snap Snapshot, withPDF bool) ([]string, error) {
	var written []string
	title := fmt.Sprintf("%s: %s, %s", s.Run, s.Result.Algorithm, s.Result.Precision)

	solution, err := SolutionPNG(snap, title)
	if err != nil {
		return nil, err
	}
	s.Images = append(s.Images, Image{Name: SolutionFile, PNG: solution, Caption: "Solution"})

	history, err := HistoryPNG(snap, title)
	switch {
	case errors.Is(err, ErrNothingToPlot):
	case err != nil:
		return nil, err
	default:
		s.Images = append(s.Images, Image{Name: HistoryFile, PNG: history, Caption: "L2 change and error per step"})
	}

	for _, img := range s.Images {
		path := filepath.Join(dir, img.Name)
		if err = os.WriteFile(path, img.PNG, 0o644); err != nil {
			return written, fmt.Errorf("report: %w", err)
		}
		written = append(written, path)
	}

	if withPDF {
		path := filepath.Join(dir, ReportFile)
		var buf bytes.Buffer
		if err = WritePDF(&buf, s); err != nil {
			return written, err
		}
		if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return written, fmt.Errorf("report: %w", err)
		}
		written = append(written, path)
	}

	return written, nil
}
