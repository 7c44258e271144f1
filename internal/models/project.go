package models

type Project struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Tasks       []*Task `json:"tasks"`
}

func (p *Project) AddTask(t *Task) {
	p.Tasks = append(p.Tasks, t)
}

func (p *Project) TaskCount() int {
	return len(p.Tasks)
}

func (p *Project) FindTask(id string) (*Task, bool) {
	for _, t := range p.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// RemoveTask drops the task with the given id keeping the order of the rest.
func (p *Project) RemoveTask(id string) bool {
	for ind, t := range p.Tasks {
		if t.ID == id {
			p.Tasks = append(p.Tasks[:ind], p.Tasks[ind+1:]...)
			return true
		}
	}
	return false
}
