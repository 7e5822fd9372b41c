package challenge

// DefaultContent returns the built-in challenge material used when no
// content pack is loaded.
func DefaultContent() *Content {
	return &Content{
		Riddles: []RiddleSpec{
			{Difficulty: 1, Category: "objects", Question: "What has keys but no locks, space but no room, and you can enter but not go inside?", Answers: []string{"keyboard", "computer keyboard"}, Hint: "Think about something you use every day with your computer."},
			{Difficulty: 2, Category: "nature", Question: "I am not alive, but I grow; I don't have lungs, but I need air; I don't have a mouth, but water kills me. What am I?", Answers: []string{"fire", "flame"}, Hint: "It's something that needs oxygen to survive."},
			{Difficulty: 3, Category: "mystery", Question: "The more you take, the more you leave behind. What am I?", Answers: []string{"footsteps", "steps", "footprints"}, Hint: "Think about what you leave behind when you walk."},
			{Difficulty: 4, Category: "objects", Question: "I have cities, but no houses. I have mountains, but no trees. I have water, but no fish. What am I?", Answers: []string{"map", "a map"}, Hint: "It's a representation of the world, but not the world itself."},
			{Difficulty: 5, Category: "wordplay", Question: "What comes once in a minute, twice in a moment, but never in a thousand years?", Answers: []string{"the letter m", "letter m", "m"}, Hint: "Look at the letters in the words 'minute' and 'moment'."},
			{Difficulty: 6, Category: "nature", Question: "I am always hungry and will die if not fed, but whatever I touch will soon turn red. What am I?", Answers: []string{"fire", "flame"}, Hint: "It's dangerous and consumes everything it touches."},
			{Difficulty: 7, Category: "objects", Question: "What has a head, a tail, is brown, and has no legs?", Answers: []string{"penny", "coin", "a penny"}, Hint: "It's something small and round that you might find in your pocket."},
			{Difficulty: 8, Category: "nature", Question: "I speak without a mouth and hear without ears. I have no body, but come alive with wind. What am I?", Answers: []string{"echo", "an echo"}, Hint: "It's a sound that comes back to you."},
			{Difficulty: 9, Category: "mystery", Question: "The person who makes it, sells it. The person who buys it, never uses it. The person who uses it, never knows it. What is it?", Answers: []string{"coffin", "a coffin", "casket"}, Hint: "Think about something used in funerals."},
			{Difficulty: 10, Category: "wordplay", Question: "I am the beginning of the end, and the end of time and space. I am essential to creation, and I surround every place. What am I?", Answers: []string{"the letter e", "letter e", "e"}, Hint: "It's a letter that appears in many important words."},
		},
		Puzzles: []PuzzleSpec{
			{Kind: PuzzleKindSequence, Difficulty: 1, Sequence: []string{"2", "4", "6", "8", "?"}, Answer: "10", Rule: "even numbers"},
			{Kind: PuzzleKindSequence, Difficulty: 2, Sequence: []string{"1", "4", "9", "16", "?"}, Answer: "25", Rule: "perfect squares"},
			{Kind: PuzzleKindSequence, Difficulty: 3, Sequence: []string{"1", "1", "2", "3", "5", "?"}, Answer: "8", Rule: "Fibonacci sequence"},
			{Kind: PuzzleKindSequence, Difficulty: 4, Sequence: []string{"2", "6", "12", "20", "?"}, Answer: "30", Rule: "n(n+1)"},
			{Kind: PuzzleKindSequence, Difficulty: 5, Sequence: []string{"1", "4", "7", "10", "?"}, Answer: "13", Rule: "add 3 each time"},
			{Kind: PuzzleKindPattern, Difficulty: 4, Sequence: []string{"○", "○", "△", "○", "○", "?"}, Answer: "△", Rule: "alternating pattern: two circles, one triangle"},
			{Kind: PuzzleKindPattern, Difficulty: 5, Sequence: []string{"△", "□", "△", "□", "△", "?"}, Answer: "□", Rule: "alternating triangle and square"},
			{Kind: PuzzleKindPattern, Difficulty: 6, Sequence: []string{"△", "□", "○", "△", "□", "?"}, Answer: "○", Rule: "repeating sequence of triangle, square, circle"},
			{Kind: PuzzleKindPattern, Difficulty: 6, Sequence: []string{"□", "○", "△", "□", "○", "?"}, Answer: "△", Rule: "repeating sequence of square, circle, triangle"},
			{Kind: PuzzleKindMath, Difficulty: 7, Description: "If 2 cats catch 2 mice in 2 minutes, how many cats are needed to catch 100 mice in 50 minutes?", Answer: "4", Explanation: "One cat catches one mouse every 2 minutes, so in 50 minutes a cat catches 25 mice. Four cats catch 100."},
			{Kind: PuzzleKindMath, Difficulty: 7, Description: "A farmer has chickens and rabbits. There are 35 heads and 94 feet total. How many chickens are there?", Answer: "23", Explanation: "With c+r=35 and 2c+4r=94, r=12 and c=23."},
			{Kind: PuzzleKindMath, Difficulty: 8, Description: "In a race, you overtake the person in 2nd place. What position are you in now?", Answer: "2nd", Explanation: "Overtaking the runner in 2nd place puts you in their position."},
			{
				Kind: PuzzleKindLogicGrid, Difficulty: 9,
				Description: "Three friends (Alice, Bob, Carol) have different pets (cat, dog, bird) and live in different colored houses (red, blue, green).",
				Clues: []string{
					"Alice doesn't live in the red house",
					"The person with the cat lives in the blue house",
					"Bob has the dog",
					"Carol doesn't live in the green house",
				},
				Questions: []string{
					"Who lives in the red house?",
					"What pet does Alice have?",
					"What color house does Bob live in?",
				},
				Answers: []string{"Carol", "bird", "green"},
			},
		},
		Enemies: []EnemySpec{
			{Difficulty: 1, Name: "Weak Goblin", Health: 20, Attack: 5, Defense: 1},
			{Difficulty: 2, Name: "Cave Rat", Health: 25, Attack: 6, Defense: 1},
			{Difficulty: 3, Name: "Skeleton Warrior", Health: 35, Attack: 8, Defense: 2},
			{Difficulty: 4, Name: "Orc Raider", Health: 45, Attack: 10, Defense: 3},
			{Difficulty: 5, Name: "Shadow Beast", Health: 55, Attack: 12, Defense: 4},
			{Difficulty: 6, Name: "Stone Golem", Health: 70, Attack: 14, Defense: 6},
			{Difficulty: 7, Name: "Fire Elemental", Health: 65, Attack: 18, Defense: 3},
			{Difficulty: 8, Name: "Dark Knight", Health: 85, Attack: 16, Defense: 8},
			{Difficulty: 9, Name: "Ancient Dragon", Health: 120, Attack: 22, Defense: 10},
			{Difficulty: 10, Name: "Demon Lord", Health: 150, Attack: 25, Defense: 12},
		},
		Scenarios: []ScenarioSpec{
			{Stat: "strength", Difficulty: 2, Text: "A massive boulder blocks your path. You need to move it aside."},
			{Stat: "strength", Difficulty: 4, Text: "Heavy iron bars block a doorway. You must bend them to pass."},
			{Stat: "strength", Difficulty: 6, Text: "A deep pit requires you to climb up using only your grip strength."},
			{Stat: "strength", Difficulty: 8, Text: "Ancient chains bind a treasure chest. You need to break them."},
			{Stat: "strength", Difficulty: 10, Text: "A stone door is stuck shut and requires great force to open."},
			{Stat: "intelligence", Difficulty: 2, Text: "Ancient symbols cover the wall. You must decipher their meaning."},
			{Stat: "intelligence", Difficulty: 4, Text: "A complex mechanical puzzle blocks your way forward."},
			{Stat: "intelligence", Difficulty: 6, Text: "Mysterious runes glow with power. You need to understand their pattern."},
			{Stat: "intelligence", Difficulty: 8, Text: "A riddle is carved in stone, but it's written in an ancient language."},
			{Stat: "intelligence", Difficulty: 10, Text: "Multiple levers control a mechanism. You must determine the correct sequence."},
			{Stat: "dexterity", Difficulty: 2, Text: "Pressure plates cover the floor. You must navigate without triggering them."},
			{Stat: "dexterity", Difficulty: 4, Text: "A narrow ledge spans a dangerous chasm. You need perfect balance."},
			{Stat: "dexterity", Difficulty: 6, Text: "Spinning blades block the passage. You must time your movement precisely."},
			{Stat: "dexterity", Difficulty: 8, Text: "A complex lock requires delicate manipulation to open."},
			{Stat: "dexterity", Difficulty: 10, Text: "Swinging pendulums guard the exit. You need to slip through at the right moment."},
			{Stat: "luck", Difficulty: 2, Text: "Three identical doors stand before you. Only one leads forward safely."},
			{Stat: "luck", Difficulty: 4, Text: "A magical wheel spins with various symbols. You must choose when to stop it."},
			{Stat: "luck", Difficulty: 6, Text: "Ancient dice lie on a pedestal. The gods will judge your fortune."},
			{Stat: "luck", Difficulty: 8, Text: "A shimmering portal flickers unstably. You must time your entry perfectly."},
			{Stat: "luck", Difficulty: 10, Text: "Five treasure chests sit before you, but only one contains what you need."},
		},
	}
}
