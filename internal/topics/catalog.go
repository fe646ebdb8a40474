package topics

// catalog is the built-in topic list. Curated topics carry fixed
// question sets; generative topics carry example questions only.
var catalog = []Topic{
	{
		ID:          "geography",
		Name:        "Geography",
		Description: "Estimate distances, populations, and geographical feature sizes.",
		ExampleQuestions: []string{
			"How many countries are in Africa?",
			"What is the approximate length of the Amazon River in kilometers?",
			"What is the population of Tokyo?",
		},
	},
	{
		ID:          "history",
		Name:        "History",
		Description: "Estimate years, durations of events, and historical quantities.",
		ExampleQuestions: []string{
			"In what year did the Titanic sink?",
			"How many years did the Hundred Years' War actually last?",
			"How many pyramids are estimated to be in Egypt?",
		},
	},
	{
		ID:          "science",
		Name:        "Science & Nature",
		Description: "Estimate scientific constants, animal speeds, and natural phenomena.",
		ExampleQuestions: []string{
			"What is the speed of light in meters per second?",
			"How many hearts does an octopus have?",
			"What is the average weight of a mature blue whale in kilograms?",
		},
	},
	{
		ID:          "technology",
		Name:        "Technology",
		Description: "Estimate data sizes, processing speeds, and user numbers.",
		ExampleQuestions: []string{
			"How many gigabytes of data does an average 10-minute 4K video consume?",
			"How many transistors were in the Intel 4004 processor?",
			"How many active users does Wikipedia have monthly?",
		},
	},
	{
		ID:          "everyday-numbers",
		Name:        "Everyday Numbers",
		Description: "Quantities from daily life: time, money, food, and travel.",
		Questions: []Question{
			{Text: "How many minutes are in a week?", Answer: 10080},
			{Text: "How many seconds are in a day?", Answer: 86400},
			{Text: "How many days are in a leap year?", Answer: 366},
			{Text: "How many hours of sleep does the average adult get per year, assuming 7 hours a night?", Answer: 2555, HasErrorRange: true},
			{Text: "How many heartbeats does a resting human have in an hour, at 70 beats per minute?", Answer: 4200},
			{Text: "How many liters of water does a typical 10-minute shower use?", Answer: 95, HasErrorRange: true},
			{Text: "How many steps is a 5-kilometer walk, at roughly 1300 steps per kilometer?", Answer: 6500, HasErrorRange: true},
			{Text: "How many slices are in four 8-slice pizzas?", Answer: 32},
		},
	},
	{
		ID:          "orders-of-magnitude",
		Name:        "Orders of Magnitude",
		Description: "Big and small numbers: powers of ten, scale, and rough arithmetic.",
		Questions: []Question{
			{Text: "What is 2 to the power of 10?", Answer: 1024},
			{Text: "What is one million divided by one thousand?", Answer: 1000},
			{Text: "How many millimeters are in a kilometer?", Answer: 1000000},
			{Text: "What is 15 percent of 2400?", Answer: 360},
			{Text: "How many zeros are in a trillion (short scale)?", Answer: 12},
			{Text: "What is the approximate circumference of the Earth in kilometers?", Answer: 40075, HasErrorRange: true},
			{Text: "Roughly how many grains of rice are in a kilogram?", Answer: 50000, HasErrorRange: true},
		},
	},
}
