package careerspage

import (
	"strconv"
	"strings"
	"time"

	"github.com/Abraxas-365/careers/careers/company"
	"github.com/Abraxas-365/careers/careers/job"
	"github.com/Abraxas-365/careers/pkg/kernel"
)

const (
	DemoCompanyID kernel.CompanyID = "demo-company-id"
	demoUserID    kernel.UserID    = "demo-user-id"
)

// DemoSnapshot builds a sample careers page for slug
func DemoSnapshot(slug string, now time.Time) *Snapshot {
	co := demoCompany(slug, now)
	return &Snapshot{
		Company:  co,
		Jobs:     demoJobs(co.ID, now),
		CachedAt: now,
	}
}

func demoCompany(slug string, now time.Time) company.Company {
	return company.Company{
		ID:             DemoCompanyID,
		UserID:         demoUserID,
		Slug:           slug,
		Name:           demoName(slug),
		Tagline:        "Building the future of technology, one innovation at a time",
		Description:    "We are a leading technology company focused on creating innovative solutions that transform industries. Our mission is to empower businesses and individuals through cutting-edge technology.",
		PrimaryColor:   "#6366f1",
		SecondaryColor: "#8b5cf6",
		IsPublished:    true,
		ContentSections: []company.ContentSection{
			{
				ID:      "about",
				Type:    company.SectionAbout,
				Title:   "About Us",
				Content: "TechCorp is a global leader in technology innovation. Founded in 2015, we've grown from a small startup to a company of over 500 employees across 10 countries. Our commitment to excellence drives everything we do.",
				Order:   0,
			},
			{
				ID:      "culture",
				Type:    company.SectionCulture,
				Title:   "Our Culture",
				Content: "We believe in fostering a culture of innovation, collaboration, and continuous learning. Our team members are encouraged to think outside the box, take calculated risks, and push the boundaries of what's possible.",
				Order:   1,
			},
			{
				ID:      "benefits",
				Type:    company.SectionBenefits,
				Title:   "Benefits & Perks",
				Content: "Competitive salary, equity packages, unlimited PTO, remote-first culture, health insurance, learning budget, home office stipend, and annual team retreats to amazing destinations.",
				Order:   2,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// demoName is "TechCorp Inc." for techcorp, otherwise the slug with dashes
// as spaces and the first letter upper-cased
func demoName(slug string) string {
	if slug == "techcorp" {
		return "TechCorp Inc."
	}
	name := strings.ReplaceAll(slug, "-", " ")
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

type demoJob struct {
	title, department, location, locationType string
	salaryMin, salaryMax                      int
	description                               string
	responsibilities, qualifications          []string
	benefits                                  []string
}

var demoJobSeeds = []demoJob{
	{
		title: "Senior Frontend Engineer", department: "Engineering", location: "San Francisco, CA", locationType: "hybrid",
		salaryMin: 150000, salaryMax: 200000,
		description:      "We're looking for a Senior Frontend Engineer to join our growing team. You'll work on building beautiful, performant user interfaces for our flagship products.",
		responsibilities: []string{"Lead frontend architecture decisions", "Mentor junior developers", "Build reusable component libraries", "Collaborate with design and product teams"},
		qualifications:   []string{"5+ years of frontend experience", "Expert in React and TypeScript", "Experience with modern CSS and animation libraries", "Strong communication skills"},
		benefits:         []string{"Competitive salary", "Equity package", "Health insurance", "Unlimited PTO"},
	},
	{
		title: "Product Designer", department: "Design", location: "New York, NY", locationType: "remote",
		salaryMin: 120000, salaryMax: 160000,
		description:      "Join our design team to create stunning user experiences. You'll work closely with product and engineering to shape the future of our products.",
		responsibilities: []string{"Create user-centered designs", "Build and maintain design systems", "Conduct user research", "Prototype new features"},
		qualifications:   []string{"4+ years of product design experience", "Proficiency in Figma", "Strong portfolio", "Experience with design systems"},
		benefits:         []string{"Remote-first", "Learning budget", "Home office stipend", "Team retreats"},
	},
	{
		title: "Backend Engineer", department: "Engineering", location: "Austin, TX", locationType: "onsite",
		salaryMin: 140000, salaryMax: 180000,
		description:      "We need a talented Backend Engineer to help scale our infrastructure and build robust APIs that power our applications.",
		responsibilities: []string{"Design and implement APIs", "Optimize database performance", "Build scalable microservices", "Ensure system reliability"},
		qualifications:   []string{"4+ years backend experience", "Strong in Node.js or Python", "Database expertise", "Cloud infrastructure knowledge"},
		benefits:         []string{"Competitive comp", "401k matching", "Parental leave", "Wellness programs"},
	},
	{
		title: "DevOps Engineer", department: "Engineering", location: "Remote", locationType: "remote",
		salaryMin: 130000, salaryMax: 170000,
		description:      "Help us build and maintain our cloud infrastructure. You'll work on CI/CD pipelines, monitoring, and ensuring our systems are always running smoothly.",
		responsibilities: []string{"Manage cloud infrastructure", "Build CI/CD pipelines", "Implement monitoring solutions", "Automate deployments"},
		qualifications:   []string{"3+ years DevOps experience", "AWS/GCP expertise", "Kubernetes knowledge", "Scripting skills"},
		benefits:         []string{"Fully remote", "Flexible hours", "Equipment budget", "Conference allowance"},
	},
	{
		title: "Marketing Manager", department: "Marketing", location: "Los Angeles, CA", locationType: "hybrid",
		salaryMin: 100000, salaryMax: 140000,
		description:      "Lead our marketing efforts and help us reach new audiences. You'll develop campaigns, manage our brand presence, and drive growth.",
		responsibilities: []string{"Develop marketing strategies", "Manage campaigns", "Analyze metrics", "Lead marketing team"},
		qualifications:   []string{"5+ years marketing experience", "B2B SaaS background", "Data-driven approach", "Leadership skills"},
		benefits:         []string{"Growth opportunities", "Marketing budget", "Team events", "Career development"},
	},
}

func demoJobs(companyID kernel.CompanyID, now time.Time) []job.Job {
	jobs := make([]job.Job, 0, len(demoJobSeeds))
	for i, seed := range demoJobSeeds {
		salaryMin, salaryMax := seed.salaryMin, seed.salaryMax
		jobs = append(jobs, job.Job{
			ID:               kernel.JobID("demo-job-" + strconv.Itoa(i+1)),
			CompanyID:        companyID,
			Title:            seed.title,
			Department:       seed.department,
			Location:         seed.location,
			LocationType:     seed.locationType,
			JobType:          job.DefaultJobType,
			Description:      seed.description,
			Responsibilities: seed.responsibilities,
			Qualifications:   seed.qualifications,
			Benefits:         seed.benefits,
			SalaryMin:        &salaryMin,
			SalaryMax:        &salaryMax,
			SalaryCurrency:   job.DefaultCurrency,
			IsActive:         true,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}
	return jobs
}
