// Package skills provides dictionary-based skill extraction and categorization.
package skills

// Category groups a named set of skills. Slices keep their definition order so
// extraction output is deterministic.
type Category struct {
	Name   string
	Skills []string
}

// DefaultDictionary is the static skills database scanned against CV text.
func DefaultDictionary() []Category {
	return []Category{
		{"backend", []string{"Python", "Java", "C#", "PHP", "Ruby", "Node.js", "Go", "Rust", "C++", "Scala"}},
		{"frontend", []string{"JavaScript", "TypeScript", "React", "Vue.js", "Angular", "Svelte", "HTML", "CSS", "Sass"}},
		{"devops", []string{"Docker", "Kubernetes", "Terraform", "Jenkins", "Ansible", "GitLab CI", "CircleCI"}},
		{"mobile", []string{"Swift", "Kotlin", "Flutter", "React Native", "Objective-C"}},
		{"database", []string{"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "SQLite", "Oracle"}},
		{"data", []string{"R", "TensorFlow", "PyTorch", "Pandas", "NumPy", "Spark", "Scikit-learn"}},
		{"design", []string{"Figma", "Adobe XD", "Sketch", "Photoshop", "Illustrator"}},
		{"management", []string{"Agile", "Scrum", "Kanban", "Jira", "Gestion de projet", "Management"}},
		{"cloud", []string{"AWS", "Azure", "GCP", "Heroku", "OVH"}},
		{"testing", []string{"Selenium", "Cypress", "Jest", "JUnit", "PHPUnit", "Pytest"}},
	}
}
