package document

// Default returns the built-in document used whenever no durable copy exists
// or the durable copy cannot be read. Callers receive a fresh copy each time;
// mutating it never affects later calls.
func Default() Document {
	return Document{
		Name:      "Nafeesath Thanzeeha",
		Tagline:   "IoT Enthusiast & Computer Science Engineer",
		Intro:     "Building the future with code and hardware. Focused on IoT, AI, and solving real-world problems.",
		AvatarURL: "https://i.ibb.co/Q7zXMcbN/avatar.jpg",
		Email:     "naftha126@gmail.com",
		Phone:     "8217513491",
		LinkedIn:  "https://www.linkedin.com/in/nafeesath-thanzeeha-b7a34b359",
		Location:  "Manjeshwara, India",
		About:     "I am a 3rd Semester Computer Science Engineering student at PA College of Engineering, Mangalore. Passionate about bridging the gap between software and hardware through IoT and AI solutions.",
		Interests: "IoT, AI, Engineering Projects, Hardware Prototyping, Personal Growth",
		ResumeURL: "resume.pdf",
		Skills: []string{
			"C", "Python", "Arduino", "ESP32", "IoT Sensors", "ThingSpeak", "Hardware Prototyping", "Problem Solving",
		},
		Education: []Education{
			{
				ID:          "edu-1",
				Level:       "B.E. Computer Science Engineering",
				Institution: "PA College of Engineering, Mangalore",
				Details:     "3rd Semester - Current",
				Year:        "2023 - Present",
			},
			{
				ID:          "edu-2",
				Level:       "12th Grade (PUC)",
				Institution: "Pre-University College",
				Details:     "83.33%",
				Year:        "2023",
			},
			{
				ID:          "edu-3",
				Level:       "10th Grade",
				Institution: "High School",
				Details:     "94.72%",
				Year:        "2021",
			},
		},
		Projects: []Project{
			{
				ID:          "proj-1",
				Title:       "TerraSafe",
				TechStack:   "Geospatial Analysis, ML, Satellite Data",
				Description: "Satellite-based multi-hazard early detection system aiming to predict natural disasters using real-time data.",
				Status:      "In Progress",
				ImageURL:    "https://picsum.photos/seed/terra/600/400",
				GithubURL:   "https://github.com",
			},
			{
				ID:          "proj-2",
				Title:       "EMG Monitoring",
				TechStack:   "ESP32, Muscle BioAmp, ThingSpeak",
				Description: "Real-time muscle activity monitoring system with cloud visualization and local LCD display for patient diagnostics.",
				Status:      "Completed",
				ImageURL:    "https://picsum.photos/seed/emg/600/400",
				GithubURL:   "https://github.com",
				LiveDemoURL: "https://thingspeak.com",
			},
			{
				ID:          "proj-3",
				Title:       "Footstep Energy Harvester",
				TechStack:   "Piezoelectric Modules, Boost Converter",
				Description: "Sustainable energy solution converting mechanical kinetic energy from footsteps into usable electricity.",
				Status:      "Prototype",
				ImageURL:    "https://picsum.photos/seed/footstep/600/400",
			},
		},
	}
}
