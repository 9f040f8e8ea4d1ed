package models

// DefaultSkills returns the full static skill table shipped with the
// app, used to seed the database on first run. Reference data only,
// CompletedReps always starts at zero.
func DefaultSkills() []Skill {
	return []Skill{
		{
			Name:     "Front Press",
			Type:     SkillTypeArms,
			Hits:     SkillHitsThree,
			Damage:   [4]int{25, 320, 390, 745},
			Unlocks:  [4]int{5, 144, 148, 286},
			Hashtags: [3]string{HashtagChest, HashtagEmpty, HashtagEmpty},
			Recharge: [4]int{2, 3, 4, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Overhead Press",
			Type:     SkillTypeArms,
			Hits:     SkillHitsOne,
			Damage:   [4]int{30, 350, 655, 1000},
			Unlocks:  [4]int{1, 104, 201, 286},
			Hashtags: [3]string{HashtagUpperArms, HashtagChest, HashtagShoulders},
			Recharge: [4]int{1, 2, 3, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Back Press",
			Type:     SkillTypeArms,
			Hits:     SkillHitsOne,
			Damage:   [4]int{220, 255, 675, 100},
			Unlocks:  [4]int{77, 80, 180, 286},
			Hashtags: [3]string{HashtagUpperArms, HashtagPosture, HashtagShoulders},
			Recharge: [4]int{2, 2, 3, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Tricep Kickback",
			Type:     SkillTypeArms,
			Hits:     SkillHitsThree,
			Damage:   [4]int{145, 240, 430, 745},
			Unlocks:  [4]int{62, 100, 195, 286},
			Hashtags: [3]string{HashtagUpperArms, HashtagEmpty, HashtagEmpty},
			Recharge: [4]int{2, 3, 4, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Bow Pull",
			Type:     SkillTypeArms,
			Hits:     SkillHitsFive,
			Damage:   [4]int{35, 210, 370, 655},
			Unlocks:  [4]int{17, 107, 156, 286},
			Hashtags: [3]string{HashtagUpperArms, HashtagTrapezius, HashtagCore},
			Recharge: [4]int{2, 3, 4, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Shoulder Press",
			Type:     SkillTypeArms,
			Hits:     SkillHitsHeal,
			Damage:   [4]int{6, 12, 14, 20},
			Unlocks:  [4]int{52, 119, 156, 286},
			Hashtags: [3]string{HashtagUpperArms, HashtagPosture, HashtagShoulders},
			Recharge: [4]int{3, 3, 4, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Overhead Arm Spin",
			Type:     SkillTypeArms,
			Hits:     SkillHitsFive,
			Damage:   [4]int{90, 295, 490, 655},
			Unlocks:  [4]int{47, 131, 267, 286},
			Hashtags: [3]string{HashtagUpperArms, HashtagShoulders, HashtagPosture},
			Recharge: [4]int{3, 3, 5, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Overhead Arm Twist",
			Type:     SkillTypeArms,
			Hits:     SkillHitsOne,
			Damage:   [4]int{90, 350, 705, 1000},
			Unlocks:  [4]int{29, 125, 188, 286},
			Hashtags: [3]string{HashtagUpperArms, HashtagShoulders, HashtagCore},
			Recharge: [4]int{2, 2, 4, 0},
			GoalReps: 5000,
		},
		{
			Name:     "Plank",
			Type:     SkillTypeCore,
			Hits:     SkillHitsThree,
			Damage:   [4]int{50, 325, 485, 745},
			Unlocks:  [4]int{20, 132, 172, 286},
			Hashtags: [3]string{HashtagAbs, HashtagCore, HashtagPosture},
			Recharge: [4]int{2, 3, 4, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Leg Raise",
			Type:     SkillTypeCore,
			Hits:     SkillHitsOne,
			Damage:   [4]int{175, 300, 755, 1000},
			Unlocks:  [4]int{56, 92, 196, 286},
			Hashtags: [3]string{HashtagAbs, HashtagCore, HashtagEmpty},
			Recharge: [4]int{2, 2, 4, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Open & Close Leg Raise",
			Type:     SkillTypeCore,
			Hits:     SkillHitsHeal,
			Damage:   [4]int{5, 13, 17, 20},
			Unlocks:  [4]int{28, 125, 184, 286},
			Hashtags: [3]string{HashtagAbs, HashtagLegs, HashtagGlutes},
			Recharge: [4]int{3, 3, 4, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Overhead Side Bend",
			Type:     SkillTypeCore,
			Hits:     SkillHitsHeal,
			Damage:   [4]int{7, 11, 14, 20},
			Unlocks:  [4]int{65, 119, 146, 286},
			Hashtags: [3]string{HashtagWaist, HashtagCore, HashtagUpperArms},
			Recharge: [4]int{3, 3, 4, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Pendulum Bend",
			Type:     SkillTypeCore,
			Hits:     SkillHitsThree,
			Damage:   [4]int{130, 215, 560, 745},
			Unlocks:  [4]int{58, 89, 245, 286},
			Hashtags: [3]string{HashtagWaist, HashtagLowerBody, HashtagCore},
			Recharge: [4]int{2, 3, 5, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Overhead Bend",
			Type:     SkillTypeCore,
			Hits:     SkillHitsOne,
			Damage:   [4]int{80, 390, 795, 1000},
			Unlocks:  [4]int{20, 116, 204, 286},
			Hashtags: [3]string{HashtagCore, HashtagPosture, HashtagTrapezius},
			Recharge: [4]int{1, 2, 4, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Seated Forward Press",
			Type:     SkillTypeCore,
			Hits:     SkillHitsHeal,
			Damage:   [4]int{5, 10, 15, 20},
			Unlocks:  [4]int{37, 95, 159, 286},
			Hashtags: [3]string{HashtagUpperArms, HashtagAbs, HashtagFlexibility},
			Recharge: [4]int{3, 3, 4, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Knee-to-Chest",
			Type:     SkillTypeCore,
			Hits:     SkillHitsOne,
			Damage:   [4]int{30, 235, 700, 1000},
			Unlocks:  [4]int{1, 74, 226, 286},
			Hashtags: [3]string{HashtagAbs, HashtagUpperArms, HashtagCore},
			Recharge: [4]int{1, 2, 3, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Overhead Lunge Twist",
			Type:     SkillTypeCore,
			Hits:     SkillHitsOne,
			Damage:   [4]int{155, 360, 840, 1000},
			Unlocks:  [4]int{50, 113, 212, 286},
			Hashtags: [3]string{HashtagWaist, HashtagLegs, HashtagCore},
			Recharge: [4]int{2, 2, 4, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Leg Scissors",
			Type:     SkillTypeCore,
			Hits:     SkillHitsThree,
			Damage:   [4]int{135, 280, 445, 745},
			Unlocks:  [4]int{58, 110, 164, 286},
			Hashtags: [3]string{HashtagAbs, HashtagLegs, HashtagStamina},
			Recharge: [4]int{2, 3, 4, 0},
			GoalReps: 5000,
		},
		{
			Name:     "Flutter Kick",
			Type:     SkillTypeCore,
			Hits:     SkillHitsOne,
			Damage:   [4]int{175, 470, 625, 1000},
			Unlocks:  [4]int{56, 122, 169, 286},
			Hashtags: [3]string{HashtagAbs, HashtagLegs, HashtagEmpty},
			Recharge: [4]int{2, 2, 3, 0},
			GoalReps: 5000,
		},
		{
			Name:     "Seated Ring Raise",
			Type:     SkillTypeCore,
			Hits:     SkillHitsOne,
			Damage:   [4]int{220, 335, 545, 1000},
			Unlocks:  [4]int{74, 101, 152, 286},
			Hashtags: [3]string{HashtagAbs, HashtagLegs, HashtagCore},
			Recharge: [4]int{2, 2, 3, 0},
			GoalReps: 5000,
		},
		{
			Name:     "Russian Twist",
			Type:     SkillTypeCore,
			Hits:     SkillHitsFive,
			Damage:   [4]int{130, 235, 455, 655},
			Unlocks:  [4]int{61, 103, 233, 286},
			Hashtags: [3]string{HashtagWaist, HashtagAbs, HashtagCore},
			Recharge: [4]int{3, 3, 4, 0},
			GoalReps: 5000,
		},
		{
			Name:     "Standing Twist",
			Type:     SkillTypeCore,
			Hits:     SkillHitsFive,
			Damage:   [4]int{20, 205, 325, 655},
			Unlocks:  [4]int{8, 101, 144, 286},
			Hashtags: [3]string{HashtagWaist, HashtagStamina, HashtagEmpty},
			Recharge: [4]int{2, 3, 4, 0},
			GoalReps: 5000,
		},
		{
			Name:     "Overhead Hip Shake",
			Type:     SkillTypeCore,
			Hits:     SkillHitsFive,
			Damage:   [4]int{70, 275, 395, 655},
			Unlocks:  [4]int{38, 122, 177, 286},
			Hashtags: [3]string{HashtagWaist, HashtagStamina, HashtagUpperArms},
			Recharge: [4]int{3, 3, 4, 0},
			GoalReps: 5000,
		},
		{
			Name:     "Squat",
			Type:     SkillTypeLegs,
			Hits:     SkillHitsOne,
			Damage:   [4]int{30, 360, 655, 1000},
			Unlocks:  [4]int{1, 116, 215, 286},
			Hashtags: [3]string{HashtagLegs, HashtagGlutes, HashtagStamina},
			Recharge: [4]int{1, 2, 3, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Wide Squat",
			Type:     SkillTypeLegs,
			Hits:     SkillHitsThree,
			Damage:   [4]int{85, 185, 560, 745},
			Unlocks:  [4]int{35, 77, 250, 286},
			Hashtags: [3]string{HashtagLegs, HashtagGlutes, HashtagStamina},
			Recharge: [4]int{2, 3, 5, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Overhead Squat",
			Type:     SkillTypeLegs,
			Hits:     SkillHitsFive,
			Damage:   [4]int{110, 210, 325, 655},
			Unlocks:  [4]int{50, 98, 139, 286},
			Hashtags: [3]string{HashtagLegs, HashtagGlutes, HashtagStamina},
			Recharge: [4]int{3, 3, 3, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Thigh Press",
			Type:     SkillTypeLegs,
			Hits:     SkillHitsOne,
			Damage:   [4]int{80, 295, 615, 1000},
			Unlocks:  [4]int{23, 89, 168, 286},
			Hashtags: [3]string{HashtagLegs, HashtagLowerBody, HashtagPosture},
			Recharge: [4]int{1, 2, 3, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Hip Lift",
			Type:     SkillTypeLegs,
			Hits:     SkillHitsHeal,
			Damage:   [4]int{6, 11, 16, 20},
			Unlocks:  [4]int{44, 107, 209, 286},
			Hashtags: [3]string{HashtagLegs, HashtagGlutes, HashtagCore},
			Recharge: [4]int{3, 3, 4, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Mountain Climber",
			Type:     SkillTypeLegs,
			Hits:     SkillHitsFive,
			Damage:   [4]int{120, 285, 510, 655},
			Unlocks:  [4]int{59, 151, 200, 286},
			Hashtags: [3]string{HashtagLegs, HashtagUpperArms, HashtagGlutes},
			Recharge: [4]int{3, 3, 4, 0},
			GoalReps: 3000,
		},
		{
			Name:     "Knee Lift",
			Type:     SkillTypeLegs,
			Hits:     SkillHitsOne,
			Damage:   [4]int{50, 275, 615, 1000},
			Unlocks:  [4]int{11, 86, 169, 286},
			Hashtags: [3]string{HashtagAbs, HashtagLegs, HashtagStamina},
			Recharge: [4]int{1, 2, 3, 0},
			GoalReps: 5000,
		},
		{
			Name:     "Side Step",
			Type:     SkillTypeLegs,
			Hits:     SkillHitsThree,
			Damage:   [4]int{160, 295, 545, 725},
			Unlocks:  [4]int{66, 116, 192, 286},
			Hashtags: [3]string{HashtagUpperArms, HashtagLegs, HashtagStamina},
			Recharge: [4]int{2, 3, 4, 0},
			GoalReps: 5000,
		},
		{
			Name:     "Ring Raise Combo",
			Type:     SkillTypeLegs,
			Hits:     SkillHitsOne,
			Damage:   [4]int{155, 415, 615, 1000},
			Unlocks:  [4]int{44, 122, 165, 286},
			Hashtags: [3]string{HashtagLegs, HashtagGlutes, HashtagStamina},
			Recharge: [4]int{2, 2, 3, 0},
			GoalReps: 5000,
		},
		{
			Name:     "Knee-Lift Combo",
			Type:     SkillTypeLegs,
			Hits:     SkillHitsThree,
			Damage:   [4]int{165, 240, 490, 745},
			Unlocks:  [4]int{71, 110, 180, 286},
			Hashtags: [3]string{HashtagLegs, HashtagGlutes, HashtagStamina},
			Recharge: [4]int{3, 3, 4, 0},
			GoalReps: 5000,
		},
		{
			Name:     "Chair Pose",
			Type:     SkillTypeYoga,
			Hits:     SkillHitsOne,
			Damage:   [4]int{30, 260, 655, 1000},
			Unlocks:  [4]int{1, 77, 240, 286},
			Hashtags: [3]string{HashtagLowerBody, HashtagCore, HashtagStamina},
			Recharge: [4]int{1, 2, 3, 0},
			GoalReps: 2000,
		},
		{
			Name:     "Boat Pose",
			Type:     SkillTypeYoga,
			Hits:     SkillHitsFive,
			Damage:   [4]int{155, 320, 495, 655},
			Unlocks:  [4]int{71, 137, 255, 286},
			Hashtags: [3]string{HashtagAbs, HashtagCore, HashtagStamina},
			Recharge: [4]int{3, 3, 5, 0},
			GoalReps: 2000,
		},
		{
			Name:     "Standing Forward Fold",
			Type:     SkillTypeYoga,
			Hits:     SkillHitsHeal,
			Damage:   [4]int{8, 11, 19, 20},
			Unlocks:  [4]int{70, 113, 208, 286},
			Hashtags: [3]string{HashtagUpperArms, HashtagShoulders, HashtagFlexibility},
			Recharge: [4]int{3, 3, 5, 0},
			GoalReps: 2000,
		},
		{
			Name:     "Tree Pose",
			Type:     SkillTypeYoga,
			Hits:     SkillHitsOne,
			Damage:   [4]int{220, 425, 490, 1000},
			Unlocks:  [4]int{68, 138, 140, 286},
			Hashtags: [3]string{HashtagLegs, HashtagLowerBody, HashtagPosture},
			Recharge: [4]int{2, 2, 3, 0},
			GoalReps: 2000,
		},
		{
			Name:     "Hinge Pose",
			Type:     SkillTypeYoga,
			Hits:     SkillHitsThree,
			Damage:   [4]int{125, 350, 460, 745},
			Unlocks:  [4]int{53, 137, 188, 286},
			Hashtags: [3]string{HashtagShoulders, HashtagLegs, HashtagBack},
			Recharge: [4]int{2, 3, 4, 0},
			GoalReps: 2000,
		},
		{
			Name:     "Revolved Crescent Lunge Pose",
			Type:     SkillTypeYoga,
			Hits:     SkillHitsOne,
			Damage:   [4]int{130, 295, 580, 1000},
			Unlocks:  [4]int{41, 84, 160, 286},
			Hashtags: [3]string{HashtagWaist, HashtagLowerBody, HashtagCore},
			Recharge: [4]int{2, 2, 3, 0},
			GoalReps: 2000,
		},
		{
			Name:     "Fan Pose",
			Type:     SkillTypeYoga,
			Hits:     SkillHitsHeal,
			Damage:   [4]int{4, 9, 15, 20},
			Unlocks:  [4]int{26, 83, 185, 286},
			Hashtags: [3]string{HashtagWaist, HashtagFlexibility, HashtagShoulders},
			Recharge: [4]int{3, 3, 4, 0},
			GoalReps: 2000,
		},
		{
			Name:     "Warrior I Pose",
			Type:     SkillTypeYoga,
			Hits:     SkillHitsOne,
			Damage:   [4]int{60, 300, 580, 1000},
			Unlocks:  [4]int{14, 92, 155, 286},
			Hashtags: [3]string{HashtagLowerBody, HashtagAerobic, HashtagPosture},
			Recharge: [4]int{1, 2, 3, 0},
			GoalReps: 2000,
		},
		{
			Name:     "Warrior II Pose",
			Type:     SkillTypeYoga,
			Hits:     SkillHitsFive,
			Damage:   [4]int{60, 210, 430, 655},
			Unlocks:  [4]int{32, 95, 176, 286},
			Hashtags: [3]string{HashtagChest, HashtagUpperArms, HashtagShoulders},
			Recharge: [4]int{2, 3, 4, 0},
			GoalReps: 2000,
		},
		{
			Name:     "Warrior III Pose",
			Type:     SkillTypeYoga,
			Hits:     SkillHitsThree,
			Damage:   [4]int{125, 330, 440, 745},
			Unlocks:  [4]int{44, 128, 162, 286},
			Hashtags: [3]string{HashtagAerobic, HashtagCore, HashtagStamina},
			Recharge: [4]int{2, 3, 4, 0},
			GoalReps: 2000,
		},
	}
}
