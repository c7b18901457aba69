package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Customers() CustomerRepository
	Users() UserRepository
	Products() ProductRepository
}
