package faq

// defaultRecords is the portfolio owner's FAQ. Order matters: ties in the
// Matcher resolve to the earlier record.
var defaultRecords = []Record{
	{
		Question: "🧑‍💻 Who are you?",
		Answer:   "I'm Mann Gupta, a passionate Software Engineer skilled in Backend Development, AI/ML, and DevOps, focused on creating scalable, automated, and intelligent systems.",
		Keywords: []string{"who", "are", "you", "introduction", "introduce", "yourself"},
	},
	{
		Question: "💼 What was your last company?",
		Answer:   "My last role was at WorkIndia, where I worked as a Software Developer Intern from February 2025 to July 2025.",
		Keywords: []string{"last", "company", "previous", "work", "worked", "company", "role", "job"},
	},
	{
		Question: "❓ Why did you leave your last company?",
		Answer:   "I had to step away due to a family emergency, which required my full attention. During that time, I began developing a product prototype and continued learning advanced backend and AI technologies. Now, I'm back with double the energy and focus, ready to take on challenging roles again.",
		Keywords: []string{"why", "leave", "left", "departure", "resign", "quit", "reason"},
	},
	{
		Question: "💡 What kind of projects have you worked on recently?",
		Answer:   "**Multi-Tenant Project Management System** (Jira-inspired) - Built with TypeScript, Node.js, MongoDB, featuring role-based access and real-time updates for multiple organizations.\n\n**Pneumonia Detection CNN Model** - Achieved 92% accuracy using TensorFlow/Keras, optimized with GPU acceleration for medical imaging classification.\n\n**Course Differentiator Platform** - AI-powered chatbot using Generative AI and web scraping (BeautifulSoup) to provide personalized course recommendations.\n\n**EduTube Live Streaming App** - Full-stack platform with secure authentication, AI-filtered content, and CI/CD automation.\n\n**Player-Ball Interaction Analysis** - Computer vision pipeline for sports analytics using OpenCV and deep learning.\n\nEach project demonstrates my ability to build production-ready systems across different domains.",
		Keywords: []string{"projects", "worked", "recent", "built", "developed", "project", "portfolio"},
	},
	{
		Question: "🧠 What do you specialize in?",
		Answer:   "I specialize in three core areas:\n\n**Backend Development** - Building scalable microservices, RESTful APIs, and multi-tenant architectures (like my Jira-inspired project management system).\n\n**AI/ML Engineering** - Developing intelligent systems, chatbots, and computer vision models. At ITC Infotech, I built Agentic AI bots that reduced HR workload significantly.\n\n**DevOps & Cloud** - Optimizing infrastructure on AWS (EKS, EC2, S3), implementing CI/CD pipelines, and reducing operational costs. I cut WorkIndia's costs by 50% through auto-scaling.",
		Keywords: []string{"specialize", "specialization", "expertise", "focus", "skills", "specialty"},
	},
	{
		Question: "🌟 What makes you different from other candidates?",
		Answer:   "My unique combination of **JEE Advanced qualification** (among 1M+ candidates) and **1900+ LeetCode rating** shows both academic excellence and consistent problem-solving skills. I've delivered measurable impact: reducing operational costs by 50% at WorkIndia, building a 92% accurate CNN model for pneumonia detection, and creating AI systems that actually improve team productivity. I'm not just a coder—I design solutions that scale and save costs while maintaining quality.",
		Keywords: []string{"different", "unique", "stand", "out", "advantage", "edge", "candidate"},
	},
	{
		Question: "⚙️ What technologies do you work with?",
		Answer:   "Languages: Python, C++, Java, TypeScript, JavaScript\n\nFrameworks: Django, Node.js, React.js, Next.js\n\nAI/ML: TensorFlow, Keras, Scikit-learn, LangChain, Agentic AI\n\nCloud & DevOps: AWS (EC2, EKS, S3), Docker, Kubernetes, Jenkins, CI/CD\n\nDatabases: MySQL, PostgreSQL, MongoDB",
		Keywords: []string{"technologies", "tech", "stack", "tools", "languages", "frameworks", "skills", "tech"},
	},
	{
		Question: "📍 Where are you located?",
		Answer:   "I'm currently based in Bangalore, India, but open to remote work or relocation for the right opportunity.",
		Keywords: []string{"where", "located", "location", "base", "based", "live", "city"},
	},
	{
		Question: "🚀 What motivates you at work?",
		Answer:   "**Real impact**—I'm driven by building systems that genuinely improve efficiency, like cutting costs by 50% or reducing team workload with AI automation. **Technical challenges** that push me to learn—mastering Kubernetes, building 92% accurate ML models, and designing multi-tenant architectures. **Continuous growth**—working with teams that value innovation, where I can contribute to meaningful projects while expanding my skills in enterprise-level development, cloud infrastructure, and AI/ML systems.",
		Keywords: []string{"motivate", "motivation", "drive", "inspire", "excite", "passion", "work"},
	},
	{
		Question: "🔧 What's a technical challenge you solved recently?",
		Answer:   "At WorkIndia, I migrated and optimized an Amazon EKS cluster hosting 15+ microservices. I implemented auto-scaling, reducing operational costs and boosting stability — a key win for deployment efficiency.",
		Keywords: []string{"challenge", "technical", "problem", "solved", "difficulty", "recent"},
	},
	{
		Question: "💬 How do you handle challenges or pressure?",
		Answer:   "I focus on breaking problems into small, logical steps, automate repetitive parts, and collaborate with teammates. My calm mindset and structured problem-solving approach help me deliver under tight deadlines.",
		Keywords: []string{"handle", "challenge", "pressure", "stress", "deal", "coping", "difficult"},
	},
	{
		Question: "🧩 How do you keep your technical skills up-to-date?",
		Answer:   "**Hands-on practice**: I maintain a 1900+ LeetCode rating through consistent problem-solving. **Building real projects**: Each new project introduces me to new tech—I learned Kubernetes and EKS while optimizing WorkIndia's infrastructure, and mastered LangChain/Agentic AI at ITC Infotech. **Following industry trends**: I stay updated on AI research, cloud innovations (AWS updates), and DevOps best practices. **Learning by doing**: Rather than just reading, I implement new technologies in personal projects—my Course Differentiator taught me web scraping, and my CNN model deepened my understanding of medical AI.",
		Keywords: []string{"skills", "up-to-date", "learn", "learning", "improve", "develop", "grow"},
	},
	{
		Question: "🏆 What are you most proud of in your career so far?",
		Answer:   "**At WorkIndia**: Reducing operational costs by 50% through smart auto-scaling in Amazon EKS—this had real financial impact and improved system reliability.\n\n**At ITC Infotech**: Building Agentic AI bots (Customer Support & HR) that autonomously handled queries, genuinely reducing team workload.\n\n**Technical Achievement**: Building a 92% accurate CNN model for pneumonia detection—applying deep learning to healthcare showed me how tech can save lives.\n\n**Academic Excellence**: Qualifying JEE Advanced among 1M+ candidates and maintaining 1900+ LeetCode rating demonstrates consistent excellence in both academics and problem-solving.",
		Keywords: []string{"proud", "achievement", "accomplishment", "proudest", "best", "career"},
	},
	{
		Question: "🔥 What do you look for in a company?",
		Answer:   "A culture that values innovation, ownership, and learning. I thrive in environments where I can build end-to-end systems, take initiative, and work with teams solving impactful, technical problems.",
		Keywords: []string{"company", "look", "for", "culture", "values", "expect", "want"},
	},
	{
		Question: "📈 What's your long-term goal?",
		Answer:   "To grow into a Tech Lead or AI Systems Engineer, driving scalable backend architectures and integrating AI into real-world automation systems.",
		Keywords: []string{"goal", "long-term", "future", "aspiration", "plan", "vision", "career"},
	},
	{
		Question: "💻 What kind of project would make you say \"yes\" immediately?",
		Answer:   "Projects that combine **AI with real-world impact**—like my pneumonia detection model (92% accuracy) or the Agentic AI bots that reduced HR workload. I'm excited about **scalable backend systems** that serve multiple organizations (like my multi-tenant project management system). **DevOps challenges** where I can optimize costs and infrastructure—I cut WorkIndia's costs by 50% through smart auto-scaling. Any role where I can build systems that genuinely improve efficiency and scale to serve thousands of users.",
		Keywords: []string{"project", "yes", "immediately", "interest", "excite", "would", "want"},
	},
	{
		Question: "🤝 How do you work in a team?",
		Answer:   "I believe in clear communication, ownership, and collaboration. I often take initiative in debugging, reviewing PRs, or automating tasks to support my team's productivity.",
		Keywords: []string{"team", "work", "collaboration", "collaborate", "together", "colleagues"},
	},
	{
		Question: "✨ What are your strengths?",
		Answer:   "**Technical Excellence**: Fast learner who mastered Kubernetes, EKS, and AI frameworks quickly—reduced deployment costs by 50% within months at WorkIndia.\n\n**Problem-Solving**: Strong analytical skills shown through 1900+ LeetCode rating and building complex systems like multi-tenant architectures.\n\n**Attention to Detail**: Achieved 92% accuracy in medical AI models and designed systems that handle production workloads reliably.\n\n**Team Collaboration**: Built Agentic AI bots that reduced HR workload, showing I create tools that help entire teams, not just myself.",
		Keywords: []string{"strengths", "strength", "strong", "good", "at", "excel", "best"},
	},
	{
		Question: "💬 What are your weaknesses?",
		Answer:   "I tend to overanalyze details initially, but I've learned to balance speed with precision through structured planning and task prioritization.",
		Keywords: []string{"weaknesses", "weakness", "weak", "improve", "improvement", "challenge"},
	},
	{
		Question: "🎯 What are your interests outside work?",
		Answer:   "Exploring new technologies, playing sports, and traveling — they help me recharge and approach problems with fresh perspectives.",
		Keywords: []string{"interests", "interest", "hobby", "hobbies", "outside", "work", "personal"},
	},
	{
		Question: "📞 How can someone reach you?",
		Answer:   "**Email**: manngupta923@gmail.com\n**Phone**: +91 6266725150\n**LinkedIn**: [linkedin.com/in/gupta-mann](https://linkedin.com/in/gupta-mann)\n**GitHub**: [github.com/mann-gupta1](https://github.com/mann-gupta1)\n**LeetCode**: [leetcode.com/m-g](https://leetcode.com/m-g)\n\nI'm based in Bangalore, India, and available for immediate opportunities. Feel free to reach out for collaborations, opportunities, or just to connect!",
		Keywords: []string{"reach", "contact", "email", "phone", "connect", "get", "touch"},
	},
}

var defaultCorpus = MustCorpus(defaultRecords)

// Default returns the built-in corpus.
func Default() *Corpus {
	return defaultCorpus
}
