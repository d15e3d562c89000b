package curriculum

// dayTitles and sessionTitles are the compiled-in course table. They are
// never written after package initialization.
var dayTitles = map[int]string{
	1: "Foundations",
	2: "Layout & Styling",
	3: "Navigation",
	4: "State & Data",
	5: "Native Capabilities",
	6: "Performance & Testing",
	7: "Shipping to Stores",
}

var sessionTitles = map[int]map[int]string{
	1: {
		1: "Welcome to React Native",
		2: "JSX, Components & Props",
		3: "Expo Tooling & the Dev Loop",
		4: "Core Components",
		5: "Challenge: Profile Card",
	},
	2: {
		1: "StyleSheet Basics",
		2: "Flexbox in Depth",
		3: "Responsive Layouts",
		4: "Theming & Dark Mode",
		5: "Challenge: Responsive Dashboard",
	},
	3: {
		1: "Stack Navigation",
		2: "Tabs & Drawers",
		3: "Passing Params Between Screens",
		4: "Deep Linking",
		5: "Challenge: Multi-Screen Notes App",
	},
	4: {
		1: "useState & useReducer",
		2: "Context & Global State",
		3: "Fetching Remote Data",
		4: "Offline Storage",
		5: "Challenge: Weather App",
	},
	5: {
		1: "Camera & Media",
		2: "Location & Maps",
		3: "Push Notifications",
		4: "Writing a Native Module",
		5: "Challenge: Photo Journal",
	},
	6: {
		1: "Lists & Virtualization",
		2: "Animations with Reanimated",
		3: "Unit Testing with Jest",
		4: "End-to-End Testing",
		5: "Challenge: Performance Audit",
	},
	7: {
		1: "App Configuration & Assets",
		2: "Building with EAS",
		3: "Over-the-Air Updates",
		4: "Publishing to the Stores",
		5: "Challenge: Ship Your App",
	},
}

// challengeSolutions outlines the reference solution for each day's
// challenge. Pages show them only once the solution gate is open.
var challengeSolutions = map[int]string{
	1: "A single `ProfileCard` component takes `name`, `role` and `avatarUri` props and lays out an `Image` beside two `Text` lines inside a rounded `View`.",
	2: "Cards sit in a `FlatList` whose `numColumns` comes from `useWindowDimensions`, and a `useColorScheme` hook swaps between two `StyleSheet` palettes.",
	3: "A native stack holds `NoteList` and `NoteEditor`. The editor receives the note id as a route param, and a `notes://note/:id` linking config opens it directly.",
	4: "A `useReducer` store tracks loading, data and error for the forecast fetch, and the last good response is cached in `AsyncStorage` for offline starts.",
	5: "`expo-image-picker` captures photos, `expo-location` tags each entry with coordinates, and a `MapView` plots the journal with one `Marker` per entry.",
	6: "The feed moves from `ScrollView` to `FlashList` with `getItemType`, row components are memoized, and a Jest snapshot plus a Detox scroll test guard the result.",
	7: "`app.config.ts` reads the release channel from the environment, `eas build --profile production` produces both binaries, and `eas update` ships the first hotfix.",
}
