package services

import (
	"fmt"
	"time"

	"github.com/tahcohcat/cluequest/internal/database"
	"github.com/tahcohcat/cluequest/internal/game"
	"github.com/tahcohcat/cluequest/internal/models"
)

type VerdictService struct {
	db *database.DB
}

func NewVerdictService(db *database.DB) *VerdictService {
	return &VerdictService{db: db}
}

// Record stores a ruling. Each session can be recorded once.
func (s *VerdictService) Record(sessionID, caseID string, ruling game.Ruling, cluesFound int) (*models.VerdictRecord, error) {
	rec := &models.VerdictRecord{
		SessionID:  sessionID,
		CaseID:     caseID,
		Accused:    ruling.Accused,
		ClueCount:  ruling.Count,
		CluesFound: cluesFound,
		Verdict:    string(ruling.Verdict),
		CreatedAt:  time.Now().UTC(),
	}

	query := `
		INSERT INTO verdicts (session_id, case_id, accused, clue_count, clues_found, verdict, created_at)
		VALUES (:session_id, :case_id, :accused, :clue_count, :clues_found, :verdict, :created_at)
	`

	result, err := s.db.NamedExec(query, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to record verdict: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get verdict ID: %w", err)
	}
	rec.ID = int(id)

	return rec, nil
}

// Recent returns the latest rulings, newest first.
func (s *VerdictService) Recent(limit int) ([]models.VerdictRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, session_id, case_id, accused, clue_count, clues_found, verdict, created_at
		FROM verdicts
		ORDER BY id DESC
		LIMIT ?
	`

	records := []models.VerdictRecord{}
	if err := s.db.Select(&records, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get verdicts: %w", err)
	}
	return records, nil
}

// Summary counts accusations and guilty rulings per accused name for a case.
func (s *VerdictService) Summary(caseID string) ([]models.AccusedSummary, error) {
	query := `
		SELECT accused,
			COUNT(*) AS accusations,
			SUM(CASE WHEN verdict = ? THEN 1 ELSE 0 END) AS guilty
		FROM verdicts
		WHERE case_id = ?
		GROUP BY accused
		ORDER BY accused
	`

	summary := []models.AccusedSummary{}
	if err := s.db.Select(&summary, query, string(game.VerdictSufficient), caseID); err != nil {
		return nil, fmt.Errorf("failed to summarise verdicts: %w", err)
	}
	return summary, nil
}
