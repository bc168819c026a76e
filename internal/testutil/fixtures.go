package testutil

// LegacyTaskFile is a task file as written by the earlier Python tool,
// with zone-less timestamps and Unicode left unescaped.
const LegacyTaskFile = `{
  "tasks": [
    {
      "id": 1,
      "name": "Buy milk",
      "details": "2%",
      "status": "done",
      "created_at": "2025-01-15T10:00:00.123456"
    },
    {
      "id": 2,
      "name": "Café run",
      "details": "",
      "status": "pending",
      "created_at": "2025-01-15T10:05:00.654321"
    }
  ],
  "next_id": 3
}`

// SparseTaskFile omits the optional task fields.
const SparseTaskFile = `{
  "tasks": [
    {"id": 1, "name": "No extras"}
  ],
  "next_id": 2
}`

// CorruptTaskFile is not valid JSON.
const CorruptTaskFile = `{"tasks": [{"id": 1, "name": `
