package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/workout-coach-bot/internal/domain/entities"
)

const programFixture = `{
  "weeks": [
    {
      "number": 1,
      "days": [
        {
          "number": 1,
          "title": "Грудь",
          "exercises": [
            {
              "id": "bench",
              "name": "Жим лежа",
              "muscle_group": "Грудь",
              "movement": "Жим",
              "sets": [{"reps": 8, "intensity": "RPE 8"}],
              "description": "Лопатки сведены."
            },
            {
              "id": "dips",
              "name": "Брусья",
              "sets": [{"reps": 10, "intensity": "RPE 7"}]
            }
          ]
        }
      ]
    }
  ]
}`

func loadFixture(t *testing.T) *Catalog {
	t.Helper()

	path := filepath.Join(t.TempDir(), "program.json")
	require.NoError(t, os.WriteFile(path, []byte(programFixture), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	return c
}

func TestLoad(t *testing.T) {
	c := loadFixture(t)

	require.Len(t, c.Weeks(), 1)

	ex, err := c.Exercise(1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "bench", ex.ID)
	assert.Equal(t, "Жим лежа", ex.Name)
	require.Len(t, ex.Sets, 1)
	assert.Equal(t, 8, ex.Sets[0].Reps)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_EmptyProgram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"weeks": []}`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLookups_NotFound(t *testing.T) {
	c := loadFixture(t)

	_, err := c.Week(5)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Day(1, 4)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Exercise(2, 1, 0)
	assert.ErrorIs(t, err, ErrNotFound)

	// A stale button may carry an index past the end of the day.
	_, err = c.Exercise(1, 1, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Exercise(1, 1, -1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNew_FromEntities(t *testing.T) {
	c := New([]*entities.Week{{Number: 1, Days: []*entities.Day{{Number: 1}}}})

	d, err := c.Day(1, 1)
	require.NoError(t, err)
	assert.Empty(t, d.Exercises)
}
