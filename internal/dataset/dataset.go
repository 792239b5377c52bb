// Package dataset holds the in-memory employee records served by the local
// employee API stand-in. Records are raw upstream shapes: no performance
// block, departments as the upstream HR system labels them.
package dataset

import (
	"sort"

	"github.com/atinyakov/staffdeck/internal/models"
)

// Store is the stub API's record set. It is not safe for concurrent
// mutation; the HTTP handlers serialize access through a mutex of their own.
type Store struct {
	records []models.Employee
	nextID  int
}

// New returns a store seeded with the built-in records.
func New() *Store {
	records := Seed()
	maxID := 0
	for _, r := range records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return &Store{records: records, nextID: maxID + 1}
}

// List returns up to limit records in id order. limit <= 0 means all.
func (s *Store) List(limit int) []models.Employee {
	out := make([]models.Employee, len(s.records))
	copy(out, s.records)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// Get returns the record with the given id.
func (s *Store) Get(id int) (models.Employee, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return models.Employee{}, false
}

// Add assigns the next id and stores the record built from req.
func (s *Store) Add(req models.CreateEmployeeRequest) models.Employee {
	e := models.Employee{
		ID:        s.nextID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Age:       req.Age,
		Image:     req.Image,
		Address:   req.Address,
		Company:   req.Company,
	}
	s.nextID++
	s.records = append(s.records, e)
	return e
}

// Seed returns the built-in upstream records. The same slice content is
// produced on every call, so repeated runs serve identical data.
func Seed() []models.Employee {
	mk := func(id int, first, last, email, phone string, age int, street, city, state, company, dept, title string) models.Employee {
		return models.Employee{
			ID:        id,
			FirstName: first,
			LastName:  last,
			Email:     email,
			Phone:     phone,
			Age:       age,
			Address:   models.Address{Address: street, City: city, State: state},
			Company:   models.Company{Name: company, Department: dept, Title: title},
		}
	}
	return []models.Employee{
		mk(1, "Terry", "Medhurst", "atuny0@sohu.com", "+63 791 675 8914", 50, "1745 T Street Southeast", "Washington", "DC", "Blanda-O'Keefe", "Marketing", "Help Desk Operator"),
		mk(2, "Sheldon", "Quigley", "hbingley1@plala.or.jp", "+7 813 117 7139", 28, "6007 Applegate Lane", "Louisville", "KY", "Aufderhar-Cronin", "Services", "Senior Cost Accountant"),
		mk(3, "Terrill", "Hills", "rshawe2@51.la", "+63 739 292 7942", 38, "560 Penstock Drive", "Grass Valley", "CA", "Lindgren LLC", "Marketing", "Mechanical Systems Engineer"),
		mk(4, "Miles", "Cummerata", "yraigatt3@nature.com", "+86 461 145 4186", 49, "150 Carter Street", "Manchester", "CT", "Wolff and Sons", "Business Development", "Paralegal"),
		mk(5, "Mavis", "Schultz", "kmeus4@upenn.edu", "+372 285 771 1911", 38, "2721 Lindsay Avenue", "Louisville", "KY", "Adams Inc", "Support", "Web Development Manager"),
		mk(6, "Alison", "Reichert", "jtreleven5@nhs.uk", "+351 527 735 3285", 21, "18 Densmore Drive", "Essex", "VT", "Keebler-Hickle", "Accounting", "Junior Executive"),
		mk(7, "Oleta", "Abbott", "dpettegre6@columbia.edu", "+62 640 802 7111", 31, "637 Carpenter Street", "Columbus", "OH", "Ondricka-Nader", "Services", "Sales Associate"),
		mk(8, "Ewell", "Mueller", "ggude7@chron.com", "+86 946 297 2275", 29, "5601 West Crocus Drive", "Glendale", "AZ", "Upton Group", "Support", "Chemical Engineer"),
		mk(9, "Demetrius", "Corkery", "nloiterton8@aol.com", "+86 356 590 9727", 22, "5403 Illinois Avenue", "Nashville", "TN", "Batz-Kutch", "Human Resources", "Legal Assistant"),
		mk(10, "Eleanora", "Price", "lgronaverh9@cornell.edu", "+91 656 697 1873", 37, "8821 West Myrtle Avenue", "Glendale", "AZ", "Lehner Group", "Engineering", "Budget Analyst"),
		mk(11, "Marcel", "Jones", "rhallawellb@dropbox.com", "+967 253 210 0344", 39, "2203 7th Street Road", "Louisville", "KY", "Kuhic Inc", "Business Development", "Community Outreach Specialist"),
		mk(12, "Assunta", "Rath", "rhallettc@google.nl", "+380 962 542 6549", 42, "6463 Vrain Street", "Arvada", "CO", "Goodwin-Skiles", "Engineering", "Software Test Engineer"),
		mk(13, "Trace", "Douglas", "lgribbinc@amazon.com", "+1 609 937 3468", 26, "87 Horseshoe Drive", "West Windsor", "NJ", "Grady Inc", "Legal", "Web Designer"),
		mk(14, "Enoch", "Lynch", "mturleyd@tumblr.com", "+94 912 100 5118", 21, "60 Desousa Drive", "Manchester", "CT", "Goodwin Inc", "Accounting", "Analyst Programmer"),
		mk(15, "Jeanne", "Halvorson", "kminchelle@qq.com", "+86 581 108 7855", 26, "4 Old Colony Way", "Yarmouth", "MA", "Lebsack Group", "Marketing", "Mechanical Systems Engineer"),
		mk(16, "Trycia", "Fadel", "dpierrof@vimeo.com", "+420 833 708 0340", 41, "314 South 17th Street", "Nashville", "TN", "Tillman Group", "Services", "Paralegal"),
		mk(17, "Bradford", "Prohaska", "vcholdcroftg@ocn.ne.jp", "+420 874 628 3710", 43, "1649 Timberridge Court", "Fayetteville", "NC", "Hoeger-Mills", "Accounting", "Account Coordinator"),
		mk(18, "Arely", "Skiles", "sberminghamh@chron.com", "+55 886 766 8617", 42, "5461 WestShades Valley Drive", "Montgomery", "AL", "Sipes-Murphy", "Support", "Geologist"),
		mk(19, "Gust", "Purdy", "bleveragei@so-net.ne.jp", "+86 886 889 0258", 46, "629 Debbie Drive", "Nashville", "TN", "Stark Inc", "Support", "Social Worker"),
		mk(20, "Lenna", "Renner", "aeatockj@psu.edu", "+1 904 601 7177", 41, "22 Hubble Drive", "Saint Paul", "MO", "Leffler and Sons", "Engineering", "Legal Assistant"),
	}
}
