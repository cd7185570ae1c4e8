package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var builder = entsql.Dialect(dialect.SQLite)

var questionColumns = []string{
	"id", "sequence", "school", "concept", "variant", "generator", "param_key",
	"question_text", "answer_text", "options", "correct_letter",
}

// paperRepo implements PaperRepo with the ent SQL builder and the global
// sequence counter.
type paperRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *paperRepo) CreatePaper(ctx context.Context, p PaperRecord) (*PaperRecord, error) {
	if _, err := r.GetPaper(ctx, p.ID); err == nil {
		return nil, fmt.Errorf("create paper %q: %w", p.ID, ErrConflict)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return nil, err
	}
	p.Sequence = seqNum
	p.CreatedAt = time.Now().UTC()

	q, args := builder.Insert(PapersTable.Name).
		Columns("id", "sequence", "created_at", "school", "set_name").
		Values(p.ID, p.Sequence, p.CreatedAt, p.School, p.SetName).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return nil, fmt.Errorf("insert paper: %w", err)
	}
	return &p, nil
}

func (r *paperRepo) GetPaper(ctx context.Context, id string) (*PaperRecord, error) {
	q, args := builder.Select("id", "sequence", "created_at", "school", "set_name").
		From(entsql.Table(PapersTable.Name)).
		Where(entsql.EQ("id", id)).
		Query()
	papers, err := r.queryPapers(ctx, q, args)
	if err != nil {
		return nil, err
	}
	if len(papers) == 0 {
		return nil, ErrNotFound
	}
	return &papers[0], nil
}

func (r *paperRepo) ListPapers(ctx context.Context) ([]PaperRecord, error) {
	q, args := builder.Select("id", "sequence", "created_at", "school", "set_name").
		From(entsql.Table(PapersTable.Name)).
		OrderBy(entsql.Asc("sequence")).
		Query()
	return r.queryPapers(ctx, q, args)
}

func (r *paperRepo) queryPapers(ctx context.Context, q string, args []any) ([]PaperRecord, error) {
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, q, args, rows); err != nil {
		return nil, fmt.Errorf("query papers: %w", err)
	}
	defer rows.Close()

	var out []PaperRecord
	for rows.Next() {
		var p PaperRecord
		if err := rows.Scan(&p.ID, &p.Sequence, &p.CreatedAt, &p.School, &p.SetName); err != nil {
			return nil, fmt.Errorf("scan paper: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *paperRepo) DeletePaper(ctx context.Context, id string) error {
	if _, err := r.GetPaper(ctx, id); err != nil {
		return err
	}
	// Questions go with the paper through the cascading foreign key.
	q, args := builder.Delete(PapersTable.Name).Where(entsql.EQ("id", id)).Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("delete paper: %w", err)
	}
	return nil
}

func (r *paperRepo) AddQuestions(ctx context.Context, paperID string, qs []QuestionRecord) error {
	if len(qs) == 0 {
		return nil
	}
	if _, err := r.GetPaper(ctx, paperID); err != nil {
		return err
	}

	// Reserved up front: the counter needs the only connection.
	first, err := r.seq.Reserve(ctx, len(qs))
	if err != nil {
		return err
	}

	ins := builder.Insert(PaperQuestionsTable.Name).Columns(append(questionColumns, "paper_id")...)
	for i, rec := range qs {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		opts, err := json.Marshal(rec.Options)
		if err != nil {
			return fmt.Errorf("marshal options: %w", err)
		}
		ins.Values(rec.ID, first+int64(i), rec.School, rec.Concept, rec.Variant, rec.Generator,
			rec.ParamKey, rec.Text, rec.AnswerText, string(opts), rec.CorrectLetter, paperID)
	}
	q, args := ins.Query()

	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := tx.Exec(ctx, q, args, nil); err != nil {
		tx.Rollback()
		return fmt.Errorf("insert questions: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit questions: %w", err)
	}
	return nil
}

func (r *paperRepo) Questions(ctx context.Context, paperID string) ([]QuestionRecord, error) {
	if _, err := r.GetPaper(ctx, paperID); err != nil {
		return nil, err
	}
	q, args := builder.Select(questionColumns...).
		From(entsql.Table(PaperQuestionsTable.Name)).
		Where(entsql.EQ("paper_id", paperID)).
		OrderBy(entsql.Asc("sequence")).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, q, args, rows); err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []QuestionRecord
	for rows.Next() {
		var (
			rec  QuestionRecord
			opts string
		)
		err := rows.Scan(&rec.ID, &rec.Sequence, &rec.School, &rec.Concept, &rec.Variant,
			&rec.Generator, &rec.ParamKey, &rec.Text, &rec.AnswerText, &opts, &rec.CorrectLetter)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if err := json.Unmarshal([]byte(opts), &rec.Options); err != nil {
			return nil, fmt.Errorf("unmarshal options: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *paperRepo) RemoveQuestion(ctx context.Context, paperID string, index int) error {
	qs, err := r.Questions(ctx, paperID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(qs) {
		return fmt.Errorf("question %d of %q: %w", index, paperID, ErrNotFound)
	}
	q, args := builder.Delete(PaperQuestionsTable.Name).
		Where(entsql.EQ("id", qs[index].ID)).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	return nil
}

func (r *paperRepo) CountQuestions(ctx context.Context, paperID string) (int, error) {
	q, args := builder.Select(entsql.Count("*")).
		From(entsql.Table(PaperQuestionsTable.Name)).
		Where(entsql.EQ("paper_id", paperID)).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, q, args, rows); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	defer rows.Close()

	n, err := entsql.ScanInt(rows)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}
