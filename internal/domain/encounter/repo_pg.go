package encounter

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medadvisor/medadvisor/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *repoPG) History(ctx context.Context, studentID string) ([]Summary, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT v.student_id, v.recorded_at, v.vaccination_status, v.covid_warning,
		       s.symptoms_text, d.diagnosis
		FROM vaccination_record v
		JOIN symptom_report s
		  ON s.student_id = v.student_id AND s.recorded_at = v.recorded_at
		JOIN diagnosis_entry d
		  ON d.student_id = v.student_id AND d.recorded_at = v.recorded_at AND d.rank = 1
		WHERE v.student_id = $1
		ORDER BY v.recorded_at`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.StudentID, &s.RecordedAt, &s.VaccinationStatus,
			&s.CovidWarning, &s.SymptomsText, &s.TopDiagnosis); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *repoPG) DiagnosesForDate(ctx context.Context, studentID string, recordedAt time.Time) ([]string, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT diagnosis FROM diagnosis_entry
		WHERE student_id = $1 AND recorded_at = $2
		ORDER BY rank`,
		studentID, recordedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var diagnoses []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		diagnoses = append(diagnoses, d)
	}
	return diagnoses, rows.Err()
}

// SaveEncounter writes the vaccination row, the symptom row, and one
// diagnosis row per entry inside a single transaction. A failure on any
// statement rolls the whole encounter back.
func (r *repoPG) SaveEncounter(ctx context.Context, enc *Encounter) error {
	return db.WithTx(ctx, r.pool, func(ctx context.Context) error {
		q := r.conn(ctx)

		if _, err := q.Exec(ctx, `
			INSERT INTO vaccination_record (student_id, recorded_at, vaccination_status, covid_warning)
			VALUES ($1, $2, $3, $4)`,
			enc.StudentID, enc.RecordedAt, enc.VaccinationStatus, enc.CovidWarning,
		); err != nil {
			return err
		}

		if _, err := q.Exec(ctx, `
			INSERT INTO symptom_report (student_id, recorded_at, symptoms_text)
			VALUES ($1, $2, $3)`,
			enc.StudentID, enc.RecordedAt, enc.SymptomsText,
		); err != nil {
			return err
		}

		for i, diagnosis := range enc.Diagnoses {
			if _, err := q.Exec(ctx, `
				INSERT INTO diagnosis_entry (student_id, recorded_at, rank, diagnosis)
				VALUES ($1, $2, $3, $4)`,
				enc.StudentID, enc.RecordedAt, i+1, diagnosis,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repoPG) DeleteOne(ctx context.Context, studentID string, recordedAt time.Time) error {
	return db.WithTx(ctx, r.pool, func(ctx context.Context) error {
		q := r.conn(ctx)
		for _, table := range []string{"diagnosis_entry", "symptom_report", "vaccination_record"} {
			if _, err := q.Exec(ctx,
				`DELETE FROM `+table+` WHERE student_id = $1 AND recorded_at = $2`,
				studentID, recordedAt,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repoPG) DeleteAll(ctx context.Context, studentID string) error {
	return db.WithTx(ctx, r.pool, func(ctx context.Context) error {
		q := r.conn(ctx)
		for _, table := range []string{"diagnosis_entry", "symptom_report", "vaccination_record"} {
			if _, err := q.Exec(ctx,
				`DELETE FROM `+table+` WHERE student_id = $1`,
				studentID,
			); err != nil {
				return err
			}
		}
		return nil
	})
}
