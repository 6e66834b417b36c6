package model

// DefaultResume is the blank skeleton the editor starts from: every
// list field carries exactly one empty entry so the form always shows
// at least one row per list.
func DefaultResume() *Resume {
	return &Resume{
		Experience: []Experience{{
			Company: "",
			Positions: []Position{{
				Title:        "",
				Duration:     "",
				Achievements: []string{""},
			}},
		}},
		Skills: Skills{
			Languages:     []string{""},
			Frameworks:    []string{""},
			Databases:     []string{""},
			Architectures: []string{""},
			Tools:         []string{""},
			Methodologies: []string{""},
			Other:         []string{""},
		},
		Education: []Education{{}},
		Projects: []Project{{
			Technologies: []string{""},
			Features:     []string{""},
		}},
		Achievements: []string{""},
		Interests:    []string{""},
	}
}

// SampleResume is a complete schema-valid record used to seed demo
// sessions and exercise every template section, including multiple
// positions at one employer.
func SampleResume() *Resume {
	return &Resume{
		PersonalInfo: PersonalInfo{
			Name:             "JANE OKAFOR",
			Title:            "Backend Developer",
			Phone:            "+14155550132",
			Email:            "jane.okafor@example.com",
			PortfolioWebsite: "https://janeokafor.dev",
			LinkedInURL:      "https://www.linkedin.com/in/janeokafor",
			Location:         "Austin, TX",
			Summary: "Backend developer with four years of experience designing and operating " +
				"REST APIs and event-driven services in Go and Node.js. Comfortable owning a " +
				"feature from schema design through deployment, with a focus on reliability " +
				"and clear operational metrics.",
		},
		Experience: []Experience{
			{
				Company: "Brightline Systems",
				Positions: []Position{
					{
						Title:    "Backend Developer",
						Duration: "Mar 2023 - Present",
						Achievements: []string{
							"Designed and shipped a payments reconciliation service processing 40k transactions a day.",
							"Cut p95 API latency from 480ms to 140ms by reworking query plans and adding Redis caching.",
							"Introduced structured logging and alerting that halved mean time to detection for incidents.",
						},
					},
					{
						Title:    "Junior Developer",
						Duration: "Jun 2021 - Mar 2023",
						Achievements: []string{
							"Built internal CRUD tooling for the support team, removing a weekly manual export.",
							"Wrote integration tests that caught three regressions before production rollout.",
						},
					},
				},
			},
			{
				Company: "Harbor Analytics",
				Positions: []Position{
					{
						Title:    "Software Engineering Intern",
						Duration: "Summer 2020",
						Achievements: []string{
							"Prototyped a CSV ingestion pipeline later adopted by the data platform team.",
						},
					},
				},
			},
		},
		Skills: Skills{
			Languages:     []string{"Go", "JavaScript", "SQL"},
			Frameworks:    []string{"Fiber", "Express.js", "React"},
			Databases:     []string{"PostgreSQL", "Redis"},
			Architectures: []string{"REST APIs", "Event-driven services"},
			Tools:         []string{"Docker", "Git", "Grafana"},
			Methodologies: []string{"Agile", "Trunk-based development"},
			Other:         []string{"CI/CD pipelines", "Observability"},
		},
		Education: []Education{{
			Degree:         "B.S. in Computer Science",
			Institution:    "University of Texas at Austin",
			Year:           "2017-2021",
			Location:       "Austin, TX",
			GPA:            "3.7",
			Specialization: "Distributed Systems",
			GraduationDate: "May 2021",
		}},
		Projects: []Project{
			{
				Name: "ShelfLife",
				Link: "https://github.com/janeokafor/shelflife",
				Role: "Creator",
				Description: "Inventory tracker for small food banks with expiry-date alerts and a " +
					"volunteer-facing mobile view. Runs on a single small VM and syncs offline edits.",
				Technologies: []string{"Go", "PostgreSQL", "React"},
				Features:     []string{"Expiry alerts", "Offline sync", "CSV import"},
				Duration:     "2022",
			},
			{
				Name: "queue-probe",
				Role: "Maintainer",
				Description: "Command-line tool that measures end-to-end latency of message brokers " +
					"and renders percentile charts for capacity planning.",
				Technologies: []string{"Go", "RabbitMQ"},
				Features:     []string{"Percentile charts", "Broker adapters"},
			},
		},
		Achievements: []string{
			"AWS Certified Developer Associate | Amazon Web Services | 2023",
			"Speaker, Austin Go Meetup | Profiling Go services in production | 2024",
		},
		Interests: []string{"Trail running", "Mechanical keyboards", "Community food banks"},
	}
}
