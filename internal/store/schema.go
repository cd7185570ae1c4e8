package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PapersColumns holds the columns for the "papers" table.
	PapersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "school", Type: field.TypeString},
		{Name: "set_name", Type: field.TypeString},
	}
	// PapersTable holds the schema information for the "papers" table.
	PapersTable = &schema.Table{
		Name:       "papers",
		Columns:    PapersColumns,
		PrimaryKey: []*schema.Column{PapersColumns[0]},
	}

	// PaperQuestionsColumns holds the columns for the "paper_questions" table.
	PaperQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "school", Type: field.TypeString},
		{Name: "concept", Type: field.TypeString},
		{Name: "variant", Type: field.TypeString},
		{Name: "generator", Type: field.TypeString},
		{Name: "param_key", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "answer_text", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct_letter", Type: field.TypeString},
		{Name: "paper_id", Type: field.TypeString},
	}
	// PaperQuestionsTable holds the schema information for the "paper_questions" table.
	PaperQuestionsTable = &schema.Table{
		Name:       "paper_questions",
		Columns:    PaperQuestionsColumns,
		PrimaryKey: []*schema.Column{PaperQuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "paper_questions_papers_questions",
				Columns:    []*schema.Column{PaperQuestionsColumns[11]},
				RefColumns: []*schema.Column{PapersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "paperquestion_paper_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{PaperQuestionsColumns[11], PaperQuestionsColumns[1]},
			},
		},
	}

	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PapersTable,
		PaperQuestionsTable,
		LlmRequestEventsTable,
	}
)

func init() {
	PaperQuestionsTable.ForeignKeys[0].RefTable = PapersTable
}
