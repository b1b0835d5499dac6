package analytics

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	pdfLinesPerPage = 52
	pdfMaxLineRunes = 90
)

// buildReportPDF menulis PDF A4 minimal (Helvetica, satu kolom) tanpa library eksternal.
// Baris yang terlalu panjang dipotong, halaman baru dibuat tiap pdfLinesPerPage baris.
func buildReportPDF(lines []string) []byte {
	if len(lines) == 0 {
		lines = []string{"Onboarding Report"}
	}

	var pages [][]string
	for start := 0; start < len(lines); start += pdfLinesPerPage {
		end := start + pdfLinesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, lines[start:end])
	}

	// 1: catalog, 2: pages, 3: font, lalu pasangan (page, content) per halaman
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}
	kids := make([]string, 0, len(pages))
	for i, page := range pages {
		pageObj := 4 + i*2
		contentObj := pageObj + 1
		kids = append(kids, fmt.Sprintf("%d 0 R", pageObj))

		stream := pageStream(page, i+1, len(pages))
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", contentObj),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefStart := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(offsets))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		fmt.Fprintf(&out, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart)

	return out.Bytes()
}

func pageStream(lines []string, page, total int) string {
	var content strings.Builder
	content.WriteString("BT\n/F1 11 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(truncateRunes(line, pdfMaxLineRunes))
		if i == 0 {
			fmt.Fprintf(&content, "(%s) Tj\n", escaped)
			continue
		}
		fmt.Fprintf(&content, "T* (%s) Tj\n", escaped)
	}
	content.WriteString("ET\n")
	fmt.Fprintf(&content, "BT\n/F1 9 Tf\n500 30 Td\n(Page %d of %d) Tj\nET", page, total)
	return content.String()
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)", "\r", " ", "\n", " ")
	return replacer.Replace(v)
}

func truncateRunes(v string, max int) string {
	r := []rune(v)
	if len(r) <= max {
		return v
	}
	return string(r[:max-3]) + "..."
}
