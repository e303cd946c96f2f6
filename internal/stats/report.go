package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/kanafall/internal/model"
)

// RenderSessions prints a session history table.
func RenderSessions(w io.Writer, sessions []model.SessionRecord) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	headers := []string{"When", "Mode", "Level", "WPM", "Accuracy", "Words", "Duration"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			s.CreatedAt.Format("2006-01-02 15:04"),
			string(s.Mode),
			fmt.Sprintf("%d", s.Level),
			fmt.Sprintf("%d", s.WPM),
			fmt.Sprintf("%.1f%%", s.Accuracy),
			fmt.Sprintf("%d/%d", s.CorrectWords, s.TotalWords),
			FormatTime(s.DurationMs),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true, 5: true, 6: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderBestRecords prints the per-mode best record table.
func RenderBestRecords(w io.Writer, records []model.BestRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No records yet.")
		return err
	}
	headers := []string{"Mode", "Best WPM", "Best Accuracy", "Sessions"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			string(r.Mode),
			fmt.Sprintf("%d", r.BestWPM),
			fmt.Sprintf("%.1f%%", r.BestAccuracy),
			fmt.Sprintf("%d", r.TotalSessions),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
