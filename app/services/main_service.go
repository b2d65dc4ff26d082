package services

// Main is the top-level service the composition root resolves and runs.
type Main struct {
	users *UserService
}

// SetUserService attaches the user service (invoked by the container binding).
func (m *Main) SetUserService(s *UserService) { m.users = s }

// Run exercises the demo user session.
func (m *Main) Run() {
	m.users.Login("john", "john@123")
	m.users.UpdateUserName("bob")
	m.users.LogOut()
}
