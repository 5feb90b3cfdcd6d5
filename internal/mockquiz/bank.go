package mockquiz

// bankQuestion is a canned question. Options are stored as plain texts;
// ids are assigned per serve so every served question is self-contained.
type bankQuestion struct {
	Text    string
	Options [4]string
	Correct int // index into Options
}

// difficulties in increasing order. Adjustment steps along this slice.
var difficulties = []string{"easy", "medium", "hard"}

var bank = map[string][]bankQuestion{
	"easy": {
		{Text: "Which planet is known as the Red Planet?", Options: [4]string{"Venus", "Mars", "Jupiter", "Mercury"}, Correct: 1},
		{Text: "How many continents are there?", Options: [4]string{"Five", "Six", "Seven", "Eight"}, Correct: 2},
		{Text: "What is the capital of France?", Options: [4]string{"Lyon", "Marseille", "Paris", "Nice"}, Correct: 2},
		{Text: "Which animal is the largest living land mammal?", Options: [4]string{"Hippopotamus", "African elephant", "Giraffe", "White rhino"}, Correct: 1},
		{Text: "What color do you get by mixing blue and yellow?", Options: [4]string{"Green", "Purple", "Orange", "Brown"}, Correct: 0},
		{Text: "How many sides does a hexagon have?", Options: [4]string{"Five", "Six", "Seven", "Eight"}, Correct: 1},
	},
	"medium": {
		{Text: "Which element has the chemical symbol Fe?", Options: [4]string{"Fluorine", "Iron", "Lead", "Tin"}, Correct: 1},
		{Text: "In which year did the Berlin Wall fall?", Options: [4]string{"1987", "1989", "1991", "1993"}, Correct: 1},
		{Text: "Who painted the ceiling of the Sistine Chapel?", Options: [4]string{"Leonardo da Vinci", "Raphael", "Michelangelo", "Donatello"}, Correct: 2},
		{Text: "What is the longest river in the world?", Options: [4]string{"Amazon", "Nile", "Yangtze", "Mississippi"}, Correct: 1},
		{Text: "Which country hosted the 2016 Summer Olympics?", Options: [4]string{"China", "United Kingdom", "Brazil", "Japan"}, Correct: 2},
		{Text: "What is the smallest prime number greater than 10?", Options: [4]string{"11", "12", "13", "15"}, Correct: 0},
	},
	"hard": {
		{Text: "Which particle carries the strong nuclear force?", Options: [4]string{"Photon", "Gluon", "W boson", "Graviton"}, Correct: 1},
		{Text: "Who wrote the novel \"The Master and Margarita\"?", Options: [4]string{"Fyodor Dostoevsky", "Leo Tolstoy", "Mikhail Bulgakov", "Anton Chekhov"}, Correct: 2},
		{Text: "What is the time complexity of heap insertion?", Options: [4]string{"O(1)", "O(log n)", "O(n)", "O(n log n)"}, Correct: 1},
		{Text: "Which treaty ended the Thirty Years' War?", Options: [4]string{"Treaty of Versailles", "Peace of Westphalia", "Treaty of Utrecht", "Congress of Vienna"}, Correct: 1},
		{Text: "What is the rarest naturally occurring element on Earth?", Options: [4]string{"Francium", "Astatine", "Technetium", "Promethium"}, Correct: 1},
		{Text: "In music theory, how many semitones make a perfect fifth?", Options: [4]string{"Five", "Six", "Seven", "Eight"}, Correct: 2},
	},
}
