package domain

type User struct {
	ID        int64  `db:"id"`
	Email     string `db:"email"`
	Username  string `db:"username"`
	Hash      string `db:"password_hash"`
	FullName  string `db:"full_name"`
	Phone     string `db:"phone"`
	Address   string `db:"address"`
	IsAdmin   bool   `db:"is_admin"`
	CreatedAt string `db:"created_at"`
}

// DisplayName is what receipts and listings show as the acting person.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
