package models

type Department struct {
	ID      int64
	Title   string
	Chief   int64
	Members string
	Email   string
	OwnerID int64

	// ChiefName заполняется только при выборке списка.
	ChiefName string
}

// OwnedBy сообщает, может ли u менять департамент: владелец или суперпользователь.
func (d *Department) OwnedBy(u *User) bool {
	return canModify(d.OwnerID, u)
}

func canModify(ownerID int64, u *User) bool {
	if u == nil {
		return false
	}
	return u.ID == ownerID || u.IsSuperuser()
}
