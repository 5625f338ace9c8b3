package kanban

import "github.com/google/uuid"

// ID synthesis. Uniqueness is a hard invariant enforced at creation time:
// the re-draw loop guards against collisions with whatever IDs a restored
// snapshot already carries.

func (s *service) newColumnID() string {
	for {
		id := "column_" + uuid.NewString()
		if !s.store.HasColumn(id) {
			return id
		}
	}
}

func (s *service) newTaskID() string {
	for {
		id := uuid.NewString()
		if !s.store.HasTask(id) {
			return id
		}
	}
}

func (s *service) newLabelID() string {
	for {
		id := "label_" + uuid.NewString()
		if !s.store.HasLabel(id) {
			return id
		}
	}
}
