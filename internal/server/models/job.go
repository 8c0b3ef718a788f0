package models

import "time"

type Job struct {
	ID            int64
	TeamLeader    int64
	Title         string
	WorkSize      int
	Collaborators string
	IsFinished    bool
	StartDate     time.Time
	EndDate       time.Time
	OwnerID       int64

	// LeaderName заполняется только при выборке списка.
	LeaderName string
}

// OwnedBy сообщает, может ли u менять работу: владелец или суперпользователь.
func (j *Job) OwnedBy(u *User) bool {
	return canModify(j.OwnerID, u)
}
