package content

// Contact is the fixed contact and profile information shown in the footer.
type Contact struct {
	Email     string
	LinkedIn  string
	GitHub    string
	Website   string
	Instagram string
}

// Owner is the person the portfolio belongs to.
const Owner = "Harshil Patel"

// ContactInfo returns the footer contact details.
func ContactInfo() Contact {
	return Contact{
		Email:     "harshilcpatel9944@gmail.com",
		LinkedIn:  "https://www.linkedin.com/in/harshilp9/",
		GitHub:    "https://github.com/harshil9944",
		Website:   "https://www.harshilcpatel.site",
		Instagram: "https://www.instagram.com/",
	}
}

// Entry is a timeline item used by the education, research and
// certification tabs.
type Entry struct {
	Title       string
	Subtitle    string
	Aside       string
	Description string
	Points      []string
}

var researchInternHighlights = []string{
	"Developed a noise reduction model for audio signals using deep learning, sourcing diverse audio samples and converting them into spectrograms for analysis with Python and TensorFlow",
	"Designed and trained a U-Net convolutional neural network with dropout layers, achieving a training loss of 0.002129 and validation loss of 0.002406 while preserving audio quality",
	"Utilized large-scale distributed training strategies for model optimization, ensuring efficient processing across diverse datasets",
}

// FallbackExperience is rendered when a configuration has no experience.
func FallbackExperience() []Experience {
	return []Experience{{
		Title:        "Research Intern",
		Organization: "Bhaskaracharya Institute of Space Applications and Geo-informatics · Internship",
		Date:         "Dec 2022 — Apr 2023",
		Highlights:   append([]string(nil), researchInternHighlights...),
	}}
}

// FallbackProjects is rendered when a configuration has no projects.
func FallbackProjects() []Project {
	github := []Link{{Label: "GitHub", URL: "#"}}
	return []Project{
		{
			Title:        "Customer Lifetime Value Prediction",
			Description:  "Analyzed transactional data and engineered RFM (Recency, Frequency, Monetary) features. Applied K-Means clustering to segment customers into value tiers and built an XGBoost model achieving 96% prediction accuracy. Implemented custom CUDA kernels for 10x inference speed improvement.",
			Technologies: "Python · XGBoost · CUDA · Machine Learning",
			Links:        append([]Link(nil), github...),
		},
		{
			Title:        "Fraud Detection Using Machine Learning",
			Description:  "Analyzed and validated financial transaction data to identify fraud patterns. Experimented with multiple ML algorithms (Naive Bayes, Random Forest, Logistic Regression). Successfully deployed Random Forest model achieving 99.5% accuracy in detecting fraudulent transactions.",
			Technologies: "Python · Random Forest · Data Analysis",
			Links:        append([]Link(nil), github...),
		},
		{
			Title:        "Seizure Prediction Using CNNs",
			Description:  "Developed a hybrid CNN and self-attention model for early prediction of epileptic seizures using EEG signals. Research paper exploring novel techniques for seizure prediction to improve patient outcomes and enable preventive interventions.",
			Technologies: "Python · TensorFlow · Deep Learning · Research",
			Links:        append([]Link(nil), github...),
		},
	}
}

// Education lists the degrees shown in the education tab.
func Education() []Entry {
	return []Entry{
		{
			Title:       "Master of Science in Applied Artificial Intelligence",
			Subtitle:    "Stevens Institute of Technology, New Jersey, USA",
			Aside:       "GPA: 3.75/4.0",
			Description: "Advanced coursework in cutting-edge AI and machine learning techniques with focus on deep learning, pattern recognition, and practical optimization methods.",
			Points: []string{
				"Deep Learning",
				"Machine Learning",
				"Applied Modelling and Optimization",
				"Pattern Recognition and Classification",
				"Data Structures and Algorithms",
				"Probability and Statistics",
				"Linear Algebra",
			},
		},
		{
			Title:       "Bachelor of Technology in Computer Engineering",
			Subtitle:    "Dharmsinh Desai University, India",
			Aside:       "CGPA: 7.5/10",
			Description: "Comprehensive foundational engineering education with specialized focus on data structures, algorithms, machine learning, and cloud computing technologies.",
			Points: []string{
				"Data Structures and Algorithms",
				"Database Management System",
				"Design and Analysis of Algorithms",
				"Software Engineering Practices",
				"Advanced Algorithms",
				"Machine Learning",
				"Artificial Intelligence",
				"Image Processing",
				"Big Data Analytics",
				"Cloud Computing",
			},
		},
	}
}

// Research lists the research entries.
func Research() []Entry {
	return []Entry{{
		Title:       "A Novel Seizure Prediction Technique Using CNNs and Self-Attention",
		Subtitle:    "Yet to be Published",
		Description: "Developed a hybrid CNN and self-attention model for early prediction of epileptic seizures using EEG signals. This research explores innovative deep learning architectures to improve seizure prediction accuracy and enable preventive interventions for patients with epilepsy.",
		Points: []string{
			"Designed a hybrid architecture combining convolutional neural networks with self-attention mechanisms to capture both spatial and temporal patterns in EEG signals.",
			"Achieved superior performance in seizure prediction compared to traditional machine learning approaches.",
			"Demonstrates the potential for early intervention strategies that could significantly improve patient quality of life.",
		},
	}}
}

// Certifications lists the certification entries.
func Certifications() []Entry {
	return []Entry{{
		Title:       "AWS Certified AI Practitioner",
		Subtitle:    "Amazon Web Services",
		Description: "Proficient in applying AI/ML fundamentals, responsible AI practices, and leveraging AWS AI services to design data-driven solutions.",
		Points: []string{
			"Comprehensive understanding of AI/ML concepts and best practices.",
			"Expertise in AWS AI services including SageMaker, Rekognition, and other AI/ML tools.",
			"Knowledge of responsible AI principles and ethical considerations in AI deployment.",
		},
	}}
}

func defaultConfigs() map[CareerPath]Configuration {
	researchIntern := Experience{
		Title:        "Research Intern",
		Organization: "Bhaskaracharya Institute of Space Applications and Geo-informatics",
		Date:         "Dec 2022 — Apr 2023",
		Description:  "Developed a noise reduction model for audio signals using deep learning.",
		Highlights:   researchInternHighlights,
	}

	return map[CareerPath]Configuration{
		SoftwareEngineer: {
			Title:   "Full Stack Engineer",
			Eyebrow: "Full Stack Developer",
			Hero: Hero{
				Name:     Owner,
				Subtitle: "I build scalable, performant web applications using modern frontend and backend technologies.",
				Meta:     "Full Stack Developer",
				CTA:      "View Projects",
			},
			About: "Full Stack Engineer specializing in building robust, scalable web applications. Experienced with React, Node.js, Django, Laravel, and cloud technologies. Passionate about writing clean, maintainable code and implementing best practices in web development.",
			Skills: []string{
				"JavaScript", "TypeScript", "Python", "C++", "SQL",
				"React", "NextJS", "VueJS", "Node.js",
				"Django", "Laravel", "Express.js",
				"PostgreSQL", "MongoDB", "Redis",
				"Docker", "Kubernetes", "AWS", "GCP",
				"Git", "REST APIs", "GraphQL", "Microservices",
			},
			Focus: "full-stack development, scalable architecture, and clean code",
			Experience: []Experience{
				{
					Title:        "Full Stack Engineer",
					Organization: "Inntech Future",
					Date:         "Present",
					Description:  "Building scalable web applications with modern tech stack. Leading frontend development and collaborating with backend teams on API design and infrastructure.",
					Highlights: []string{
						"Developed responsive React components with TypeScript for production applications",
						"Implemented REST APIs and microservices using Node.js and Express",
						"Optimized database queries and improved application performance by 35%",
						"Collaborated with cross-functional teams on feature development and deployment",
					},
				},
				researchIntern,
			},
		},
		ProjectManager: {
			Title:   "Project Manager",
			Eyebrow: "Project Management",
			Hero: Hero{
				Name:     Owner,
				Subtitle: "I lead web application development projects, manage cross-functional teams, and ensure successful delivery of scalable solutions.",
				Meta:     "Project Manager",
				CTA:      "View Projects",
			},
			About: "Project Manager specializing in web application development projects. Skilled at planning, organizing, and executing complex web projects while leading developers, designers, and QA teams. Experience with sprint planning, deadline management, technical risk mitigation, and stakeholder communication. Strong technical understanding of frontend, backend, and cloud technologies.",
			Skills: []string{
				"Project Planning", "Sprint Planning", "Agile/Scrum", "Waterfall",
				"Timeline & Budget Management", "Resource Allocation",
				"Risk Management & Mitigation", "Stakeholder Management",
				"Team Leadership", "Cross-functional Coordination",
				"Technical Understanding (React, Node.js, Django, PostgreSQL)",
				"Web Technologies (Frontend, Backend, APIs, Databases)",
				"DevOps Awareness (Docker, AWS, CI/CD)",
				"Communication & Reporting", "Scope Management", "Quality Assurance",
			},
			Focus: "web application project delivery, team coordination, and technical excellence",
			Experience: []Experience{
				{
					Title:        "Project Manager",
					Organization: "Inntech Future",
					Date:         "Present",
					Description:  "Leading web application development projects with agile methodology. Managing cross-functional teams of developers, designers, and QA to deliver scalable solutions.",
					Highlights: []string{
						"Managed 5+ concurrent web development projects using Agile/Scrum framework",
						"Led sprint planning, stand-ups, and retrospectives; improved team velocity by 25%",
						"Coordinated with stakeholders on requirements, timelines, and budget management",
						"Identified and mitigated technical risks; ensured on-time delivery of all projects",
					},
				},
				researchIntern,
			},
		},
		AIEngineer: {
			Title:   "AI/ML Engineer",
			Eyebrow: "AI/Machine Learning",
			Hero: Hero{
				Name:     Owner,
				Subtitle: "I build intelligent systems using deep learning and machine learning to solve complex real-world problems.",
				Meta:     "AI/ML Engineer",
				CTA:      "View Projects",
			},
			About: "AI/ML Engineer with a Master's in Applied Artificial Intelligence from Stevens Institute of Technology. Passionate about building intelligent solutions using deep learning, machine learning, and modern technologies. Experienced in developing ML models for seizure prediction, fraud detection, and customer analytics. AWS Certified AI Practitioner.",
			Skills: []string{
				"Python", "C++", "SQL", "CUDA",
				"TensorFlow", "PyTorch", "Scikit-Learn", "Keras", "Langchain",
				"Pandas", "NumPy", "Matplotlib", "OpenCV", "Pillow",
				"Deep Learning", "CNNs", "RNNs", "Transformers",
				"Machine Learning", "Data Analysis",
				"AWS", "GCP", "Docker", "Git",
				"Jupyter Notebooks", "Statistical Analysis",
			},
			Focus: "deep learning, pattern recognition, and intelligent system design",
		},
	}
}
