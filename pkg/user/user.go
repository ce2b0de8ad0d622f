package user

type User struct {
	ID          int64
	Username    string
	DisplayName string
	Password    []byte
	// Blogs holds ids of the blogs this user created, in creation order.
	Blogs []string
}
