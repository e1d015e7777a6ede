package identity

var maleFirstNames = []string{
	"James", "John", "Robert", "Michael", "William", "David", "Richard", "Joseph",
	"Thomas", "Charles", "Daniel", "Matthew", "Anthony", "Mark", "Steven", "Paul",
	"Andrew", "Joshua", "Kevin", "Brian", "George", "Edward", "Ryan", "Jacob",
	"Nicholas", "Eric", "Jonathan", "Samuel", "Benjamin", "Alexander",
}

var femaleFirstNames = []string{
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica",
	"Sarah", "Karen", "Nancy", "Lisa", "Betty", "Margaret", "Sandra", "Ashley",
	"Emily", "Donna", "Michelle", "Carol", "Amanda", "Melissa", "Deborah", "Stephanie",
	"Rebecca", "Laura", "Sharon", "Cynthia", "Olivia", "Sophia",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
	"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
}

// Домены зарезервированы RFC 2606 и не принадлежат реальным почтовым сервисам.
var emailDomains = []string{
	"example.com", "example.net", "example.org", "mail.example.com", "inbox.example.net",
}
