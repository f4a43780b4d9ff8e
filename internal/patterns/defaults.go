package patterns

import "kazi-engine/internal/domain"

// Built-in dictionaries for the Kenyan tech job market. Kept as data so an
// overlay file can extend or replace them without code changes.

func skillGroup(dom domain.Domain, category string, names ...string) []SkillEntry {
	out := make([]SkillEntry, 0, len(names))
	for _, n := range names {
		out = append(out, SkillEntry{Name: n, Domain: dom, Category: category})
	}
	return out
}

func builtinSkills() []SkillEntry {
	var s []SkillEntry

	// Data science / analytics
	s = append(s, skillGroup(domain.DataScience, "languages",
		"Python", "R", "SQL", "Julia", "Scala", "SAS", "MATLAB", "Java")...)
	s = append(s, skillGroup(domain.DataScience, "ml_ai_frameworks",
		"TensorFlow", "PyTorch", "Keras", "JAX", "MXNet",
		"scikit-learn", "XGBoost", "LightGBM", "CatBoost",
		"H2O", "Auto-sklearn", "TPOT",
		"Hugging Face", "spaCy", "NLTK", "Gensim", "Transformers",
		"LangChain", "LlamaIndex", "OpenAI API", "Langsmith",
		"OpenCV", "YOLO", "Detectron")...)
	s = append(s, skillGroup(domain.DataScience, "data_processing",
		"Pandas", "NumPy", "Polars", "Dask", "PySpark",
		"Vaex", "Modin", "cuDF")...)
	s = append(s, skillGroup(domain.DataScience, "visualization",
		"Matplotlib", "Seaborn", "Plotly", "Altair", "D3.js",
		"Bokeh", "ggplot2", "Dash")...)
	s = append(s, skillGroup(domain.DataScience, "bi_tools",
		"Tableau", "Power BI", "Looker", "Metabase", "Superset",
		"Qlik", "QlikView", "Sisense", "Domo", "ThoughtSpot",
		"Google Data Studio", "SSRS", "SSIS", "SSAS")...)
	s = append(s, skillGroup(domain.DataScience, "big_data",
		"Spark", "Hadoop", "Hive", "Kafka", "Flink", "Airflow",
		"Presto", "Trino", "Beam", "Storm", "Pig", "Sqoop",
		"HDFS", "MapReduce", "Zookeeper")...)
	s = append(s, skillGroup(domain.DataScience, "databases",
		"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
		"Snowflake", "BigQuery", "Redshift", "Databricks",
		"ClickHouse", "Cassandra", "HBase", "Neo4j", "DynamoDB",
		"Oracle", "SQL Server", "MariaDB", "CouchDB", "InfluxDB")...)
	s = append(s, skillGroup(domain.DataScience, "mlops",
		"MLflow", "Kubeflow", "DVC", "Weights & Biases", "SageMaker",
		"Vertex AI", "Azure ML", "BentoML", "Seldon", "Feast",
		"Great Expectations", "Evidently", "WhyLabs")...)
	s = append(s, skillGroup(domain.DataScience, "concepts",
		"machine learning", "deep learning", "NLP", "natural language processing",
		"computer vision", "neural network", "regression", "classification",
		"clustering", "time series", "feature engineering", "A/B testing",
		"statistical analysis", "predictive modeling", "data mining",
		"ETL", "data pipeline", "data warehouse", "data lake",
		"anomaly detection", "recommendation system", "sentiment analysis",
		"reinforcement learning", "generative AI", "LLM")...)

	// Web development
	s = append(s, skillGroup(domain.WebDev, "languages",
		"JavaScript", "TypeScript", "PHP", "Ruby", "Go",
		"Rust", "C#", "Kotlin", "Swift", "Dart")...)
	s = append(s, skillGroup(domain.WebDev, "frontend_frameworks",
		"React", "Vue.js", "Angular", "Svelte", "Next.js", "Nuxt.js",
		"Remix", "Astro", "SolidJS", "Qwik", "Gatsby", "Ember",
		"jQuery", "Backbone", "Alpine.js", "HTMX", "Lit")...)
	s = append(s, skillGroup(domain.WebDev, "css_styling",
		"Tailwind CSS", "Bootstrap", "Sass", "SCSS", "Less",
		"CSS-in-JS", "styled-components", "Emotion", "Material UI",
		"Chakra UI", "Ant Design", "Shadcn", "Radix UI",
		"Bulma", "Foundation", "Semantic UI")...)
	s = append(s, skillGroup(domain.WebDev, "backend_frameworks",
		"Node.js", "Express", "NestJS", "Fastify", "Koa",
		"Django", "Flask", "FastAPI", "Pyramid",
		"Ruby on Rails", "Sinatra",
		"Laravel", "Symfony", "CodeIgniter",
		"Spring Boot", "Spring", "Micronaut", "Quarkus",
		"ASP.NET", ".NET Core", "Blazor",
		"Gin", "Echo", "Fiber")...)
	s = append(s, skillGroup(domain.WebDev, "web_databases",
		"SQLite", "Prisma", "Sequelize", "TypeORM", "Mongoose", "Drizzle",
		"Knex", "SQLAlchemy", "ActiveRecord")...)
	s = append(s, skillGroup(domain.WebDev, "devops_tools",
		"Docker", "Kubernetes", "AWS", "Azure", "GCP",
		"Vercel", "Netlify", "Heroku", "DigitalOcean", "Linode",
		"Nginx", "Apache", "Caddy",
		"CI/CD", "GitHub Actions", "GitLab CI", "Jenkins", "CircleCI",
		"Terraform", "Ansible", "Puppet", "Chef",
		"Prometheus", "Grafana", "Datadog", "New Relic")...)
	s = append(s, skillGroup(domain.WebDev, "testing",
		"Jest", "Cypress", "Playwright", "Vitest", "Mocha", "Chai",
		"pytest", "unittest", "RSpec", "Jasmine", "Karma",
		"Selenium", "Puppeteer", "Testing Library")...)
	s = append(s, skillGroup(domain.WebDev, "api_tools",
		"REST", "RESTful", "GraphQL", "gRPC", "WebSocket",
		"Swagger", "OpenAPI", "Postman", "Insomnia",
		"Apollo", "Hasura", "tRPC")...)
	s = append(s, skillGroup(domain.WebDev, "mobile",
		"React Native", "Flutter", "Ionic", "Xamarin",
		"SwiftUI", "Jetpack Compose")...)

	// Cyber security
	s = append(s, skillGroup(domain.CyberSecurity, "security_concepts",
		"penetration testing", "vulnerability assessment", "SIEM",
		"incident response", "threat intelligence", "SOC",
		"encryption", "firewall", "IDS", "IPS",
		"network security", "application security", "cloud security",
		"identity management", "access control", "IAM",
		"risk assessment", "compliance", "audit",
		"malware analysis", "reverse engineering", "forensics",
		"red team", "blue team", "purple team",
		"OWASP", "zero trust", "security architecture")...)
	s = append(s, skillGroup(domain.CyberSecurity, "tools",
		"Wireshark", "Metasploit", "Nmap", "Burp Suite", "Nessus",
		"Splunk", "CrowdStrike", "Palo Alto", "Fortinet",
		"Qualys", "Tenable", "Rapid7", "Carbon Black",
		"Snort", "Suricata", "OSSEC", "Wazuh",
		"Kali Linux", "Parrot OS", "Hashcat", "John the Ripper",
		"Cobalt Strike", "BloodHound", "Mimikatz",
		"Shodan", "theHarvester", "Maltego")...)
	s = append(s, skillGroup(domain.CyberSecurity, "certifications",
		"CISSP", "CEH", "OSCP", "CompTIA Security+", "ISO 27001",
		"CISM", "CISA", "GIAC", "CCSP", "CRISC",
		"GCIH", "GPEN", "GWAPT", "GSEC",
		"AWS Security", "Azure Security", "GCP Security")...)
	s = append(s, skillGroup(domain.CyberSecurity, "frameworks",
		"NIST", "CIS Controls", "MITRE ATT&CK", "STRIDE",
		"PCI DSS", "HIPAA", "GDPR", "SOC 2", "SOX")...)

	// Soft skills always land in general/soft_skills
	s = append(s, skillGroup(domain.General, "soft_skills",
		"communication", "teamwork", "leadership", "problem solving",
		"critical thinking", "adaptability", "collaboration",
		"time management", "attention to detail", "presentation",
		"analytical", "interpersonal", "organization", "proactive",
		"self-motivated", "creativity", "negotiation", "mentoring",
		"decision making", "conflict resolution", "stakeholder management",
		"agile", "scrum", "project management")...)

	return s
}

func builtinVariants() []Variant {
	return []Variant{
		{"PowerBI", "Power BI"},
		{"powerbi", "Power BI"},
		{"MS Power BI", "Power BI"},
		{"Postgres", "PostgreSQL"},
		{"postgres", "PostgreSQL"},
		{"psql", "PostgreSQL"},
		{"Javascript", "JavaScript"},
		{"JS", "JavaScript"},
		{"javascript", "JavaScript"},
		{"Typescript", "TypeScript"},
		{"TS", "TypeScript"},
		{"NodeJS", "Node.js"},
		{"node.js", "Node.js"},
		{"node", "Node.js"},
		{"VueJS", "Vue.js"},
		{"vue", "Vue.js"},
		{"vuejs", "Vue.js"},
		{"ReactJS", "React"},
		{"react.js", "React"},
		{"sklearn", "scikit-learn"},
		{"Scikit-learn", "scikit-learn"},
		{"Sklearn", "scikit-learn"},
		{"Tensorflow", "TensorFlow"},
		{"tensorflow", "TensorFlow"},
		{"Pytorch", "PyTorch"},
		{"pytorch", "PyTorch"},
		{"Mongo", "MongoDB"},
		{"mongo", "MongoDB"},
		{"mysql", "MySQL"},
		{"MYSQL", "MySQL"},
		{"cicd", "CI/CD"},
		{"CICD", "CI/CD"},
		{"ci cd", "CI/CD"},
	}
}

func builtinCompanyAliases() []CompanyAlias {
	return []CompanyAlias{
		{"co-operative bank", "Co-operative Bank of Kenya"},
		{"coop bank", "Co-operative Bank of Kenya"},
		{"cooperative bank", "Co-operative Bank of Kenya"},
		{"equity bank", "Equity Bank Kenya"},
		{"absa bank", "Absa Bank Kenya"},
		{"absa", "Absa Bank Kenya"},
		{"kcb bank", "KCB Bank Kenya"},
		{"kcb", "KCB Bank Kenya"},
		{"k.c.b", "KCB Bank Kenya"},
		{"cbk", "Central Bank of Kenya"},
		{"central bank", "Central Bank of Kenya"},
		{"safaricom", "Safaricom PLC"},
		{"cifor-icraf", "CIFOR-ICRAF"},
		{"cifor", "CIFOR-ICRAF"},
		{"icraf", "CIFOR-ICRAF"},
		{"world agroforestry", "CIFOR-ICRAF"},
		{"tatu city", "Tatu City"},
		{"strathmore", "Strathmore University"},
		{"strathmore university", "Strathmore University"},
		{"kwal", "KWAL"},
		{"soledad", "Soledad"},
		{"ncba", "NCBA Bank"},
		{"ncba bank", "NCBA Bank"},
		{"standard chartered", "Standard Chartered Bank"},
		{"stanchart", "Standard Chartered Bank"},
		{"dtb", "Diamond Trust Bank"},
		{"diamond trust", "Diamond Trust Bank"},
		{"i&m bank", "I&M Bank"},
		{"i&m", "I&M Bank"},
		{"family bank", "Family Bank"},
		{"sidian bank", "Sidian Bank"},
		{"gtbank", "GTBank Kenya"},
		{"gt bank", "GTBank Kenya"},
		{"stanbic", "Stanbic Bank"},
		{"stanbic bank", "Stanbic Bank"},
		{"jubilee insurance", "Jubilee Insurance"},
		{"jubilee", "Jubilee Insurance"},
		{"britam", "Britam"},
		{"britam insurance", "Britam"},
		{"icea lion", "ICEA Lion"},
		{"mtn", "MTN"},
		{"airtel", "Airtel Kenya"},
		{"telkom", "Telkom Kenya"},
		{"un-habitat", "UN-Habitat"},
		{"un habitat", "UN-Habitat"},
		{"unep", "UNEP"},
		{"undp", "UNDP"},
		{"unicef", "UNICEF"},
		{"world bank", "World Bank"},
		{"microsoft", "Microsoft"},
		{"google", "Google"},
		{"meta", "Meta"},
		{"amazon", "Amazon"},
		{"ibm", "IBM"},
	}
}

func builtinDomainKeywords() []TrackKeywords {
	return []TrackKeywords{
		{Track: domain.DataScience, Keywords: []string{
			"data scientist", "data analyst", "machine learning", "ml engineer",
			"data engineer", "bi ", "business intelligence", "analytics",
			"statistician", "research scientist", "ai engineer", "nlp",
			"computer vision", "big data", "data architect",
		}},
		{Track: domain.WebDev, Keywords: []string{
			"developer", "software engineer", "frontend", "backend",
			"full stack", "fullstack", "web", "devops", "sre",
			"react", "node", "python developer", "mobile",
			"android", "ios", "flutter", "application", "app dev",
			"microservices", "miniapps", "site reliability", "software",
			"programmer", "coding", "java developer", ".net",
		}},
		{Track: domain.CyberSecurity, Keywords: []string{
			"security", "cyber", "infosec", "soc", "penetration",
			"vulnerability", "ciso", "iam", "threat",
		}},
		{Track: domain.NetworkSystems, Keywords: []string{
			"network", "infrastructure", "system admin", "sysadmin",
			"ict officer", "it officer", "information technology",
			"support", "help desk", "hardware", "telecom",
			"wireless", "cloud", "azure", "aws",
		}},
	}
}

func builtinCareerTracks() []TrackKeywords {
	return []TrackKeywords{
		{Track: domain.DataScience, Keywords: []string{"data scientist", "data analyst", "machine learning", "ai engineer"}},
		{Track: domain.WebDev, Keywords: []string{"frontend", "backend", "full stack", "web developer", "software engineer"}},
		{Track: domain.CyberSecurity, Keywords: []string{"cyber security", "security engineer", "penetration tester", "infosec"}},
		{Track: domain.NetworkSystems, Keywords: []string{"network engineer", "systems administrator", "devops engineer"}},
	}
}

// BuiltinTables returns the default lookup tables.
func BuiltinTables() Tables {
	return Tables{
		Skills:          builtinSkills(),
		Variants:        builtinVariants(),
		CompanyAliases:  builtinCompanyAliases(),
		Cities:          []string{"nairobi", "mombasa", "kisumu", "eldoret", "nakuru", "thika"},
		DomainKeywords:  builtinDomainKeywords(),
		CareerTracks:    builtinCareerTracks(),
		DefaultLocation: "Nairobi",
	}
}
