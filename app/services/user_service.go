package services

// UserService performs user operations and logs each one through the
// Logger the container binds in.
type UserService struct {
	logger Logger
}

// SetLogger attaches the logger (invoked by the container binding).
func (s *UserService) SetLogger(l Logger) { s.logger = l }

func (s *UserService) Login(username, password string) {
	s.logger.Log("logging in user with " + username + " and " + password)
}

func (s *UserService) UpdateUserName(name string) {
	s.logger.Log("updating username " + name)
}

func (s *UserService) LogOut() {
	s.logger.Log("logging out user")
}
