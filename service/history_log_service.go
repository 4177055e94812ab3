package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"inventario-activos/models"
	"inventario-activos/utils"
)

// HistoryLogService appends human-readable change lines to the history
// sheet. Each subject identifier owns one row: column 1 is the identifier
// and new lines grow the row as trailing columns, never overwriting or
// reordering earlier ones.
type HistoryLogService struct {
	sheets *SheetsService
}

// NewHistoryLogService creates a HistoryLogService.
func NewHistoryLogService(sheets *SheetsService) *HistoryLogService {
	return &HistoryLogService{sheets: sheets}
}

// Record renders the actions and appends them to the subject's history row
// in one batched write.
func (h *HistoryLogService) Record(ctx context.Context, subjectID string, actions []models.HistoryAction) error {
	if len(actions) == 0 {
		return nil
	}
	lines := make([]string, 0, len(actions))
	for _, action := range actions {
		lines = append(lines, action.Line())
	}
	return h.Append(ctx, subjectID, lines)
}

// RecordBestEffort is Record with the failure swallowed: history is
// telemetry and must never roll back or fail the mutation that produced it.
func (h *HistoryLogService) RecordBestEffort(ctx context.Context, subjectID string, actions []models.HistoryAction) {
	if err := h.Record(ctx, subjectID, actions); err != nil {
		log.Printf("⚠️  Failed to record history for %s: %v", subjectID, err)
	}
}

// Append merges lines into the subject's history row. When the row exists,
// lines land starting at column existingRowLength+1; otherwise a new row
// is appended with the identifier in column 1.
func (h *HistoryLogService) Append(ctx context.Context, subjectID string, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	historySheet := h.sheets.Config().HistorySheet

	vr, err := h.sheets.GetValues(ctx, historySheet)
	if err != nil {
		return fmt.Errorf("failed to fetch history sheet: %w", err)
	}

	idx := utils.LocateRow(subjectID, vr.Values)
	if idx < 0 {
		row := append([]string{subjectID}, lines...)
		return h.sheets.AppendRow(ctx, historySheet, row)
	}

	existing := len(vr.Values[idx+1])
	startCol := existing + 1
	rangeA1 := utils.CellRange(historySheet, idx, startCol, existing+len(lines))
	return h.sheets.UpdateRange(ctx, rangeA1, [][]string{lines})
}

// actorOrUnknown substitutes the attribution placeholder when no actor is
// supplied; attribution gaps are recorded, not blocking.
func actorOrUnknown(actor string) string {
	if strings.TrimSpace(actor) == "" {
		return models.UnknownActor
	}
	return actor
}
