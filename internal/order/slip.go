package order

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"image/png"
	"io"
	"time"

	"github.com/skip2/go-qrcode"
)

//go:embed templates/slip.gohtml
var slipFS embed.FS

var slipTmpl = template.Must(template.New("slip.gohtml").
	Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
	ParseFS(slipFS, "templates/slip.gohtml"))

const slipTimeLayout = "2006-01-02 15:04"

// qrPNG encodes content as a PNG QR code of the given pixel size.
func qrPNG(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderSlip writes the printable order slip. The QR code carries the display id
// so a scanner at the counter can look the order up.
func RenderSlip(w io.Writer, shop string, o Order, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	qr, err := qrPNG(o.Label(), 160)
	if err != nil {
		return fmt.Errorf("qr code: %w", err)
	}
	due := "N/A"
	if at, ok := o.FulfillmentTime(); ok {
		due = at.In(loc).Format(slipTimeLayout)
	}
	created := "N/A"
	if !o.CreatedAt.IsZero() {
		created = o.CreatedAt.In(loc).Format(slipTimeLayout)
	}
	return slipTmpl.Execute(w, struct {
		Shop      string
		Order     Order
		QR        template.URL
		CreatedAt string
		DueAt     string
	}{
		Shop:      shop,
		Order:     o,
		QR:        template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(qr)),
		CreatedAt: created,
		DueAt:     due,
	})
}
