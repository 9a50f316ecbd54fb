package services

import "math/rand"

var tips = [...]string{
	"Focus on progressive overload to build muscle effectively.",
	"Ensure you're hitting your protein intake (1.6g - 2.2g per kg).",
	"Sleep is when your muscles grow. Aim for 7-9 hours.",
	"Stay hydrated! Water is crucial for metabolic function.",
	"Don't skip leg day! It boosts overall testosterone.",
}

// RandomTip picks one of the canned motivational tips, uniformly at random.
func RandomTip() string {
	return tips[rand.Intn(len(tips))]
}
