// Package content is the portfolio's fixed copy: profile, education,
// skills, projects, activities and contact details.
package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type Profile struct {
	Name       string
	Role       string
	ResumePath string
	PhotoPath  string
}

type Highlight struct {
	Label string
	Icon  string
}

type Education struct {
	Degree      string
	Institution string
	Duration    string
	Details     string
}

type SkillGroup struct {
	Title  string
	Skills []string
}

type Project struct {
	Slug         string
	Title        string
	Description  string
	Image        string
	Technologies []string
	Features     []string
	GitHub       string
	Live         string
}

type Activity struct {
	Title       string
	Description string
	Icon        string
}

type Social struct {
	Name string
	URL  string
}

type ContactInfo struct {
	Email     string
	Phone     string
	PhoneDial string
	Location  string
	Socials   []Social
}

// Site bundles everything the page renders.
type Site struct {
	Profile    Profile
	Highlights []Highlight
	Education  []Education
	Skills     []SkillGroup
	Projects   []Project
	Activities []Activity
	Contact    ContactInfo
}

// Default returns the published content.
func Default() Site {
	return Site{
		Profile: Profile{
			Name:       "Ajith Koli",
			Role:       "Full Stack Developer",
			ResumePath: "/resume.pdf",
			PhotoPath:  "/images/ajithpic.png",
		},
		Highlights: []Highlight{
			{Label: "Clean Code", Icon: "code"},
			{Label: "Backend", Icon: "storage"},
			{Label: "Responsive", Icon: "devices"},
			{Label: "CLI", Icon: "terminal"},
			{Label: "Debugging", Icon: "bug_report"},
			{Label: "Performance", Icon: "speed"},
		},
		Education: []Education{
			{
				Degree:      "Bachelor of Engineering in Computer Science",
				Institution: "RV College of Engineering",
				Duration:    "2021 - Present",
				Details:     "CGPA: 9.18",
			},
			{
				Degree:      "Pre-University Education",
				Institution: "Science Stream",
				Duration:    "2019 - 2021",
				Details:     "Strong foundation in science and mathematics",
			},
		},
		Skills: []SkillGroup{
			{Title: "Programming Languages and Tools", Skills: []string{"C", "Java", "JavaScript", "Git"}},
			{Title: "Backend Development", Skills: []string{"Node.js", "Express.js", "MongoDB", "SQL"}},
			{Title: "Frontend Development", Skills: []string{"HTML", "CSS", "JavaScript", "React.js"}},
		},
		Projects: []Project{
			{
				Slug:         "campus-connect",
				Title:        "Campus Connect",
				Description:  "A student marketplace platform for buying and selling items within the campus community.",
				Image:        "/images/camp.jpeg",
				Technologies: []string{"React", "Node.js", "MongoDB", "Socket.io", "Stripe"},
				Features: []string{
					"User authentication and profile management",
					"Real-time messaging between buyers and sellers",
					"Secure payment integration with Stripe",
					"Image upload and management",
					"Search and filter functionality",
					"Responsive design for all devices",
				},
				GitHub: "https://github.com/Ajithkoli/Hostel-trade.git",
				Live:   "https://campus-connect.vercel.app",
			},
			{
				Slug:         "motor-fault-detection",
				Title:        "Real-Time Acoustic Motor Fault Detection",
				Description:  "An edge ML project using Raspberry Pi for real-time industrial motor fault detection.",
				Image:        "/images/rasp.jpg",
				Technologies: []string{"Python", "TensorFlow", "Raspberry Pi", "Firebase", "React"},
				Features: []string{
					"Real-time audio processing and analysis",
					"Machine learning model for fault classification",
					"Firebase integration for data storage",
					"Web dashboard for monitoring and alerts",
					"Edge computing implementation",
					"Automated reporting system",
				},
				GitHub: "https://github.com/Ajithkoli/Raspberry-Pi-Motor-Fault-Detection.git",
				Live:   "https://motor-fault-detection.vercel.app",
			},
			{
				Slug:         "smart-medicine-dispenser",
				Title:        "Smart Medicine Dispenser",
				Description:  "An IoT device for automating medicine dispensing with reminders and tracking.",
				Image:        "/images/smartmed.webp",
				Technologies: []string{"Arduino", "Python", "Firebase", "React", "Node.js"},
				Features: []string{
					"Automated medicine dispensing",
					"Mobile app for medication reminders",
					"Dosage tracking and history",
					"Caregiver monitoring system",
					"Emergency alerts",
					"Battery backup system",
				},
				GitHub: "https://github.com/Ajithkoli/Automatic-Med-Dispenser.git",
				Live:   "https://smart-medicine-dispenser.vercel.app",
			},
			{
				Slug:         "smart-waste-segregator",
				Title:        "Smart Waste Segregator",
				Description:  "An IoT system using computer vision for automatic waste segregation.",
				Image:        "/images/waste.jpg",
				Technologies: []string{"Python", "OpenCV", "TensorFlow", "Raspberry Pi", "React"},
				Features: []string{
					"Computer vision for waste classification",
					"Automated sorting mechanism",
					"Real-time monitoring dashboard",
					"Waste analytics and reporting",
					"Mobile app for status updates",
					"Environmental impact tracking",
				},
				GitHub: "https://github.com/yourusername/smart-waste-segregator",
				Live:   "https://smart-waste-segregator.vercel.app",
			},
		},
		Activities: []Activity{
			{
				Title:       "Tech Tank Hackathon",
				Description: "Participated in the prestigious Tech Tank Hackathon, showcasing innovative problem-solving skills and technical expertise.",
				Icon:        "emoji_events",
			},
			{
				Title:       "All India Thal Sainik Camp",
				Description: "Successfully completed the All India Thal Sainik Camp, demonstrating exceptional leadership qualities and discipline.",
				Icon:        "military_tech",
			},
			{
				Title:       "Lakshya 2024 Shooting Competition",
				Description: "Led the organization of the Lakshya 2024 shooting competition, highlighting strong event management and teamwork capabilities.",
				Icon:        "groups",
			},
		},
		Contact: ContactInfo{
			Email:     "ajitkoli792@gmail.com",
			Phone:     "+91 6364068574",
			PhoneDial: "+916364068574",
			Location:  "Mumbai, Maharashtra, India",
			Socials: []Social{
				{Name: "GitHub", URL: "https://github.com/Ajithkoli"},
				{Name: "LinkedIn", URL: "https://www.linkedin.com/in/ajith-koli-279423287/"},
				{Name: "Twitter", URL: "https://twitter.com/yourusername"},
			},
		},
	}
}

// Project looks up a project by slug.
func (s Site) Project(slug string) (Project, bool) {
	for _, p := range s.Projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}

var (
	md     = goldmark.New(goldmark.WithExtensions(extension.Typographer))
	policy = bluemonday.UGCPolicy()
)

// Markdown renders site copy to HTML. Raw HTML in the source is dropped by
// goldmark's default renderer and the output is passed through bluemonday's
// UGC policy before it is marked safe for templates.
func Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("content: render markdown: %w", err)
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes())), nil
}
