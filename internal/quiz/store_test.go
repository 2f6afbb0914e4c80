package quiz_test

import (
	"context"
	"testing"

	"github.com/Slava47/barkocobarka/internal/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	s := quiz.NewInMemoryStore()

	_, err := s.GetQuiz(ctx, quiz.DefaultID)
	assert.ErrorIs(t, err, quiz.ErrNotFound)

	require.NoError(t, quiz.SeedIfEmpty(ctx, s))
	q, err := s.GetQuiz(ctx, quiz.DefaultID)
	require.NoError(t, err)
	require.Len(t, q.Questions, 5)
	assert.Equal(t, "алко_да", q.Questions[4].Options[0].Value)

	// seeding again must not replace a stored quiz
	custom := q
	custom.Questions = custom.Questions[:2]
	require.NoError(t, s.PutQuiz(ctx, custom))
	require.NoError(t, quiz.SeedIfEmpty(ctx, s))
	q, err = s.GetQuiz(ctx, quiz.DefaultID)
	require.NoError(t, err)
	assert.Len(t, q.Questions, 2)
}

func TestPutQuizDefaultsID(t *testing.T) {
	ctx := context.Background()
	s := quiz.NewInMemoryStore()

	require.NoError(t, s.PutQuiz(ctx, quiz.Quiz{Questions: quiz.DefaultQuiz().Questions}))
	q, err := s.GetQuiz(ctx, quiz.DefaultID)
	require.NoError(t, err)
	assert.Equal(t, quiz.DefaultID, q.ID)
}
