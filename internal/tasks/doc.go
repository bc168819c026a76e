// Package tasks holds the task list and its on-disk representation.
//
// # Store
//
// A Store is an ordered list of tasks plus the counter used to assign the
// next ID. Tasks keep creation order; completing a task never moves it.
// The counter is kept separately from the list so IDs stay unique even if
// tasks are ever removed.
//
// # File Format
//
// The store is saved as indented JSON:
//
//	{
//	  "tasks": [
//	    {
//	      "id": 1,
//	      "name": "Buy milk",
//	      "details": "2%",
//	      "status": "pending",
//	      "created_at": "2025-01-15T10:00:00.123456789+01:00"
//	    }
//	  ],
//	  "next_id": 2
//	}
//
// Loading is lenient: missing details, status, created_at or next_id are
// filled with defaults, and files written by the older Python tool (with
// zone-less timestamps) load as local time.
//
// # Usage
//
//	store, err := tasks.Load("todos.json")
//	if err != nil {
//		// store is empty but usable
//	}
//	task := store.Add("Buy milk", "2%")
//	err = tasks.Save("todos.json", store)
package tasks
