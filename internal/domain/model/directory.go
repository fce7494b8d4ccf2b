package model

// Customer is a directory entry from the customer register.
type Customer struct {
	CustomerID    int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
}

// Consultant is a directory entry from the consultant register.
type Consultant struct {
	ConsultantID    int64
	ConsultantName  string
	ConsultantPhone string
	ConsultantEmail string
}
