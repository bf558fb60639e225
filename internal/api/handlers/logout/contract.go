package logout

type AuthService interface {
	Logout()
}

type Logger interface {
	Info(format string, v ...interface{})
}
