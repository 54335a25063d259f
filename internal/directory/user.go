package directory

import (
	"github.com/rshade/roster/internal/employee"
)

// listResponse is the envelope returned by the listing endpoint.
type listResponse struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Skip  int    `json:"skip"`
	Limit int    `json:"limit"`
}

// User is one entity as returned by the endpoint, restricted to the selected fields.
type User struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	Company   Company `json:"company"`
	Address   Address `json:"address"`
	Image     string  `json:"image"`
}

// Company is the employer block of a User.
type Company struct {
	Title string `json:"title"`
}

// Address is the postal address block of a User.
type Address struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Record normalizes u into an employee.Record. Unknown gender values are kept
// as-is so that a gender filter simply never matches them.
func (u User) Record() employee.Record {
	gender, err := employee.ParseGender(u.Gender)
	if err != nil {
		gender = employee.Gender(u.Gender)
	}
	return employee.Record{
		ID:          u.ID,
		FullName:    employee.FullName(u.FirstName, u.LastName),
		Demography:  employee.Demography(gender, u.Age),
		Designation: u.Company.Title,
		Location:    employee.Location(u.Address.City, u.Address.State),
		Country:     u.Address.Country,
		Gender:      gender,
		Age:         u.Age,
		ImageURL:    u.Image,
	}
}

// Records maps a page of users.
func Records(users []User) []employee.Record {
	out := make([]employee.Record, len(users))
	for i, u := range users {
		out[i] = u.Record()
	}
	return out
}
