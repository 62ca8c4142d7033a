package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ardiansf/career-copilot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assessmentColumns() []string {
	return []string{"id", "employee_id", "aspiration", "result", "model_used", "generated_at"}
}

func TestAssessmentCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssessmentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "pathway_assessments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("3f6f6e1e-9a55-4b5e-9f40-1c9a62f1f001"))
	mock.ExpectCommit()

	err := repo.Create(&model.PathwayAssessment{
		EmployeeID:  "EMP-20001",
		Aspiration:  `{"function_area":"Data & AI"}`,
		Result:      `{"pathways":[],"internal_opportunities":[]}`,
		ModelUsed:   "gpt-4.1-nano",
		GeneratedAt: time.Now().UTC(),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentLatestOrdersByGeneratedAt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssessmentRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT \* FROM "pathway_assessments" WHERE employee_id = \$1 ORDER BY generated_at DESC`).
		WithArgs("EMP-20001", 1).
		WillReturnRows(sqlmock.NewRows(assessmentColumns()).
			AddRow("3f6f6e1e-9a55-4b5e-9f40-1c9a62f1f001", "EMP-20001", "{}", "{}", "gpt-4.1-nano", now))

	rec, err := repo.Latest("EMP-20001")

	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "EMP-20001", rec.EmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentLatestAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssessmentRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "pathway_assessments"`).
		WithArgs("EMP-20001", 1).
		WillReturnRows(sqlmock.NewRows(assessmentColumns()))

	rec, err := repo.Latest("EMP-20001")

	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestAssessmentHistoryCapsLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssessmentRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "pathway_assessments" WHERE employee_id = \$1 ORDER BY generated_at DESC`).
		WithArgs("EMP-20001", 100).
		WillReturnRows(sqlmock.NewRows(assessmentColumns()))

	_, err := repo.History("EMP-20001", 500)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentHistoryDefaultsLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssessmentRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "pathway_assessments"`).
		WithArgs("EMP-20001", 10).
		WillReturnRows(sqlmock.NewRows(assessmentColumns()))

	_, err := repo.History("EMP-20001", 0)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
