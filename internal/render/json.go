package render

import (
	"encoding/json"

	"github.com/nishc/policylint/internal/schema"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Render(report *schema.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
