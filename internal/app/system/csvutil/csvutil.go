// internal/app/system/csvutil/csvutil.go
package csvutil

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// MaxExportRows caps a single pageview export. Exports stream straight
// from the query, so the cap bounds response size rather than memory.
const MaxExportRows = 100_000

// WritePageViews streams pageview rows as a CSV attachment. The header
// row is always written, even for an empty window.
func WritePageViews(w http.ResponseWriter, filename string, rows []models.PageView) error {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"created_at", "path", "referrer", "user_agent", "ip"}); err != nil {
		return err
	}
	for _, pv := range rows {
		rec := []string{
			pv.CreatedAt.UTC().Format(time.RFC3339),
			pv.Path,
			pv.Referrer,
			pv.UserAgent,
			pv.IP,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
