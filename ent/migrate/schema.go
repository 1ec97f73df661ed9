// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AudioAssetsColumns holds the columns for the "audio_assets" table.
	AudioAssetsColumns = []*schema.Column{
		{Name: "audio_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "s3_key", Type: field.TypeString},
		{Name: "bucket", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Default: "audio/mpeg"},
		{Name: "file_size", Type: field.TypeInt64, Default: 0},
		{Name: "duration_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "transcript", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "voice", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AudioAssetsTable holds the schema information for the "audio_assets" table.
	AudioAssetsTable = &schema.Table{
		Name:       "audio_assets",
		Columns:    AudioAssetsColumns,
		PrimaryKey: []*schema.Column{AudioAssetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "audioasset_s3_key",
				Unique:  false,
				Columns: []*schema.Column{AudioAssetsColumns[2]},
			},
		},
	}
	// FlowRunsColumns holds the columns for the "flow_runs" table.
	FlowRunsColumns = []*schema.Column{
		{Name: "flow_run_id", Type: field.TypeString, Unique: true},
		{Name: "flow_name", Type: field.TypeString},
		{Name: "execution_mode", Type: field.TypeEnum, Enums: []string{"sync", "background"}, Default: "sync"},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "inputs", Type: field.TypeJSON, Nullable: true},
		{Name: "outputs", Type: field.TypeJSON, Nullable: true},
		{Name: "flow_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "current_step", Type: field.TypeString, Nullable: true},
		{Name: "step_progress", Type: field.TypeInt, Default: 0},
		{Name: "total_steps", Type: field.TypeInt, Default: 0},
		{Name: "progress_percentage", Type: field.TypeFloat64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat", Type: field.TypeTime, Nullable: true},
		{Name: "execution_time_ms", Type: field.TypeInt, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_cost", Type: field.TypeFloat64, Default: 0},
	}
	// FlowRunsTable holds the schema information for the "flow_runs" table.
	FlowRunsTable = &schema.Table{
		Name:       "flow_runs",
		Columns:    FlowRunsColumns,
		PrimaryKey: []*schema.Column{FlowRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "flowrun_status",
				Unique:  false,
				Columns: []*schema.Column{FlowRunsColumns[4]},
			},
			{
				Name:    "flowrun_flow_name",
				Unique:  false,
				Columns: []*schema.Column{FlowRunsColumns[1]},
			},
			{
				Name:    "flowrun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{FlowRunsColumns[4], FlowRunsColumns[13]},
			},
			{
				Name:    "flowrun_status_last_heartbeat",
				Unique:  false,
				Columns: []*schema.Column{FlowRunsColumns[4], FlowRunsColumns[16]},
			},
		},
	}
	// FlowStepRunsColumns holds the columns for the "flow_step_runs" table.
	FlowStepRunsColumns = []*schema.Column{
		{Name: "step_run_id", Type: field.TypeString, Unique: true},
		{Name: "step_name", Type: field.TypeString},
		{Name: "step_order", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "inputs", Type: field.TypeJSON, Nullable: true},
		{Name: "outputs", Type: field.TypeJSON, Nullable: true},
		{Name: "step_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "cost_estimate", Type: field.TypeFloat64, Default: 0},
		{Name: "execution_time_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "llm_request_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "flow_run_id", Type: field.TypeString},
	}
	// FlowStepRunsTable holds the schema information for the "flow_step_runs" table.
	FlowStepRunsTable = &schema.Table{
		Name:       "flow_step_runs",
		Columns:    FlowStepRunsColumns,
		PrimaryKey: []*schema.Column{FlowStepRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "flow_step_runs_flow_runs_steps",
				Columns:    []*schema.Column{FlowStepRunsColumns[14]},
				RefColumns: []*schema.Column{FlowRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "flowsteprun_flow_run_id_step_order",
				Unique:  true,
				Columns: []*schema.Column{FlowStepRunsColumns[14], FlowStepRunsColumns[2]},
			},
			{
				Name:    "flowsteprun_status",
				Unique:  false,
				Columns: []*schema.Column{FlowStepRunsColumns[3]},
			},
		},
	}
	// ImageAssetsColumns holds the columns for the "image_assets" table.
	ImageAssetsColumns = []*schema.Column{
		{Name: "image_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "s3_key", Type: field.TypeString},
		{Name: "bucket", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Default: "image/png"},
		{Name: "file_size", Type: field.TypeInt64, Default: 0},
		{Name: "width", Type: field.TypeInt, Nullable: true},
		{Name: "height", Type: field.TypeInt, Nullable: true},
		{Name: "alt_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ImageAssetsTable holds the schema information for the "image_assets" table.
	ImageAssetsTable = &schema.Table{
		Name:       "image_assets",
		Columns:    ImageAssetsColumns,
		PrimaryKey: []*schema.Column{ImageAssetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "imageasset_s3_key",
				Unique:  false,
				Columns: []*schema.Column{ImageAssetsColumns[2]},
			},
		},
	}
	// LlmRequestsColumns holds the columns for the "llm_requests" table.
	LlmRequestsColumns = []*schema.Column{
		{Name: "llm_request_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "api_variant", Type: field.TypeEnum, Enums: []string{"chat", "structured", "audio", "image"}, Default: "chat"},
		{Name: "messages", Type: field.TypeJSON, Nullable: true},
		{Name: "request_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "temperature", Type: field.TypeFloat64, Nullable: true},
		{Name: "max_output_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "response_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_raw", Type: field.TypeJSON, Nullable: true},
		{Name: "provider_response_id", Type: field.TypeString, Nullable: true},
		{Name: "system_fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "output_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "cost_estimate", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "failed"}, Default: "pending"},
		{Name: "error_type", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "retry_attempt", Type: field.TypeInt, Default: 1},
		{Name: "cached", Type: field.TypeBool, Default: false},
		{Name: "execution_time_ms", Type: field.TypeInt, Nullable: true},
		{Name: "flow_run_id", Type: field.TypeString, Nullable: true},
		{Name: "step_run_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "response_created_at", Type: field.TypeTime, Nullable: true},
	}
	// LlmRequestsTable holds the schema information for the "llm_requests" table.
	LlmRequestsTable = &schema.Table{
		Name:       "llm_requests",
		Columns:    LlmRequestsColumns,
		PrimaryKey: []*schema.Column{LlmRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequest_flow_run_id",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[23]},
			},
			{
				Name:    "llmrequest_step_run_id",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[24]},
			},
			{
				Name:    "llmrequest_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[17], LlmRequestsColumns[25]},
			},
			{
				Name:    "llmrequest_model",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[3]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "lesson_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "learner_level", Type: field.TypeEnum, Enums: []string{"beginner", "intermediate", "advanced"}, Default: "beginner"},
		{Name: "source_material", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "package", Type: field.TypeJSON},
		{Name: "package_version", Type: field.TypeInt, Default: 1},
		{Name: "flow_run_id", Type: field.TypeString, Nullable: true},
		{Name: "podcast_transcript", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "podcast_audio_id", Type: field.TypeString, Nullable: true},
		{Name: "podcast_duration_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "unit_id", Type: field.TypeString},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lessons_units_lessons",
				Columns:    []*schema.Column{LessonsColumns[12]},
				RefColumns: []*schema.Column{UnitsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_unit_id",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[12]},
			},
			{
				Name:    "lesson_flow_run_id",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[6]},
			},
		},
	}
	// UnitsColumns holds the columns for the "units" table.
	UnitsColumns = []*schema.Column{
		{Name: "unit_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "learner_level", Type: field.TypeEnum, Enums: []string{"beginner", "intermediate", "advanced"}, Default: "beginner"},
		{Name: "learning_objectives", Type: field.TypeJSON, Nullable: true},
		{Name: "lesson_order", Type: field.TypeJSON, Nullable: true},
		{Name: "target_lesson_count", Type: field.TypeInt, Nullable: true},
		{Name: "generated_from_topic", Type: field.TypeBool, Default: false},
		{Name: "source_material", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "flow_type", Type: field.TypeEnum, Enums: []string{"standard", "fast"}, Default: "standard"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed"}, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "creation_progress", Type: field.TypeJSON, Nullable: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "is_global", Type: field.TypeBool, Default: true},
		{Name: "flow_run_id", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "art_image_id", Type: field.TypeString, Nullable: true},
		{Name: "art_image_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "podcast_transcript", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "podcast_audio_id", Type: field.TypeString, Nullable: true},
		{Name: "podcast_voice", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// UnitsTable holds the schema information for the "units" table.
	UnitsTable = &schema.Table{
		Name:       "units",
		Columns:    UnitsColumns,
		PrimaryKey: []*schema.Column{UnitsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unit_status",
				Unique:  false,
				Columns: []*schema.Column{UnitsColumns[10]},
			},
			{
				Name:    "unit_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{UnitsColumns[10], UnitsColumns[22]},
			},
			{
				Name:    "unit_flow_run_id",
				Unique:  false,
				Columns: []*schema.Column{UnitsColumns[15]},
			},
			{
				Name:    "unit_user_id",
				Unique:  false,
				Columns: []*schema.Column{UnitsColumns[13]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AudioAssetsTable,
		FlowRunsTable,
		FlowStepRunsTable,
		ImageAssetsTable,
		LlmRequestsTable,
		LessonsTable,
		UnitsTable,
	}
)

func init() {
	FlowStepRunsTable.ForeignKeys[0].RefTable = FlowRunsTable
	LessonsTable.ForeignKeys[0].RefTable = UnitsTable
}
