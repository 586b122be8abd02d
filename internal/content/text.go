package content

// Long-form prose, written as markdown and rendered by Markdown().
var (
	HeroIntro = `I build modern web applications with a focus on user experience and clean code.
Specializing in React, Node.js, and cloud technologies.`

	AboutHeadline = "Computer Science Engineering Student at RV College of Engineering"

	AboutMe = `I am a passionate and motivated Computer Science Engineering student with a strong
academic record (**CGPA: 9.18**) and a deep enthusiasm for creating impactful software solutions.
My expertise spans both backend and frontend development, with a particular focus on building
scalable and user-friendly applications.

With proficiency in modern technologies like Node.js, Express.js, React.js, and MongoDB, I combine
technical skills with creative problem-solving to develop innovative solutions. My interests extend
to emerging technologies, particularly in machine learning and IoT, where I've successfully
implemented real-world projects that demonstrate practical applications of these technologies.`

	ContactBlurb = "Feel free to reach out to me for any opportunities or collaborations."
)
