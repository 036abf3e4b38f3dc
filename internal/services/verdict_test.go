package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahcohcat/cluequest/internal/database"
	"github.com/tahcohcat/cluequest/internal/game"
)

func newService(t *testing.T) *VerdictService {
	t.Helper()
	db, err := database.NewDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewVerdictService(db)
}

func TestRecordAndRecent(t *testing.T) {
	svc := newService(t)

	first, err := svc.Record("s1", game.ManorID, game.Ruling{Accused: "Mrs. Helena", Count: 2, Verdict: game.VerdictSufficient}, 4)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = svc.Record("s2", game.ManorID, game.Ruling{Accused: "Prof. Braga", Count: 0, Verdict: game.VerdictInsufficient}, 1)
	require.NoError(t, err)

	recent, err := svc.Recent(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "s2", recent[0].SessionID)
	assert.Equal(t, "Mrs. Helena", recent[1].Accused)
	assert.Equal(t, 2, recent[1].ClueCount)
	assert.Equal(t, 4, recent[1].CluesFound)
	assert.Equal(t, "sufficient", recent[1].Verdict)

	limited, err := svc.Recent(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestRecordSessionOnce(t *testing.T) {
	svc := newService(t)
	ruling := game.Ruling{Accused: "Sam", Count: 1, Verdict: game.VerdictInsufficient}

	_, err := svc.Record("same", "sam", ruling, 1)
	require.NoError(t, err)
	_, err = svc.Record("same", "sam", ruling, 1)
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	svc := newService(t)
	guilty := game.Ruling{Accused: "Mr. Almeida", Count: 2, Verdict: game.VerdictSufficient}
	acquitted := game.Ruling{Accused: "Mr. Almeida", Count: 1, Verdict: game.VerdictInsufficient}

	for i, r := range []game.Ruling{guilty, acquitted, guilty} {
		_, err := svc.Record(fmt.Sprintf("s%d", i), game.ManorID, r, 3)
		require.NoError(t, err)
	}
	_, err := svc.Record("other", "attic", guilty, 2)
	require.NoError(t, err)

	summary, err := svc.Summary(game.ManorID)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, "Mr. Almeida", summary[0].Accused)
	assert.Equal(t, 3, summary[0].Accusation)
	assert.Equal(t, 2, summary[0].Guilty)

	empty, err := svc.Summary("nowhere")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
