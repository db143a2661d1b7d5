package config

// ExampleConfig returns an example configuration showing all available
// options, suitable for writing as a starter taskdev.toml.
func ExampleConfig() string {
	return `# taskdev configuration file
# Values can be overridden by TASKDEV_* environment variables or CLI flags

# Directory containing task files
tasks_dir = ".tasks"

# JSON Schema validated against task front matter
schema_file = ".tasks/task.schema.json"

# Directory names skipped when combining directory trees
# (directories starting with "." are always skipped)
exclude_dirs = ["node_modules", "__pycache__", "target", "dist", "build"]

# Log level: debug, info, warn, error
log_level = "info"

# Log format: text, logfmt, json
log_format = "text"
`
}

// ExampleSchema returns a starter draft-07 JSON Schema for task front
// matter, written by "taskdev init".
func ExampleSchema() string {
	return `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Task",
  "description": "Front matter of a task file",
  "type": "object",
  "required": ["id", "title", "status", "assignee", "priority"],
  "properties": {
    "id": {
      "type": "string",
      "minLength": 1
    },
    "title": {
      "type": "string",
      "minLength": 1
    },
    "status": {
      "type": "string",
      "enum": ["todo", "in-progress", "review", "done", "blocked"]
    },
    "assignee": {
      "type": "string",
      "minLength": 1
    },
    "parent": {
      "type": "string"
    },
    "priority": {
      "type": "string",
      "enum": ["critical", "high", "medium", "low"]
    },
    "tags": {
      "type": "array",
      "items": {
        "type": "string"
      }
    },
    "whitepaper": {
      "type": "string"
    }
  },
  "additionalProperties": false
}
`
}
