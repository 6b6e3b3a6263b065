package main

// KeyCode identifies a physical key. The numeric values are the raw codes
// carried in InputEvent.Code; anything outside the table decodes to
// KeyUnknown.
type KeyCode uint8

const (
	KeyUnknown KeyCode = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeySpace
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyBacktick
	KeyComma
	KeyPeriod
	KeySlash

	KeyEnter
	KeyBackspace
	KeyTab
	KeyEscape
	KeyShift
	KeyControl
	KeyAlt

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete

	keyCodeCount
)

// DecodeKeyCode maps a raw key byte to a KeyCode. It is total.
func DecodeKeyCode(raw uint8) KeyCode {
	if raw >= uint8(keyCodeCount) {
		return KeyUnknown
	}
	return KeyCode(raw)
}

// keyChars holds the unshifted and shifted rune for each printable key
// (US layout). Zero means the key produces no character.
var keyChars = [keyCodeCount][2]rune{
	Key0: {'0', ')'}, Key1: {'1', '!'}, Key2: {'2', '@'}, Key3: {'3', '#'},
	Key4: {'4', '$'}, Key5: {'5', '%'}, Key6: {'6', '^'}, Key7: {'7', '&'},
	Key8: {'8', '*'}, Key9: {'9', '('},

	KeySpace:        {' ', ' '},
	KeyMinus:        {'-', '_'},
	KeyEqual:        {'=', '+'},
	KeyLeftBracket:  {'[', '{'},
	KeyRightBracket: {']', '}'},
	KeyBackslash:    {'\\', '|'},
	KeySemicolon:    {';', ':'},
	KeyQuote:        {'\'', '"'},
	KeyBacktick:     {'`', '~'},
	KeyComma:        {',', '<'},
	KeyPeriod:       {'.', '>'},
	KeySlash:        {'/', '?'},
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		lower := 'a' + rune(k-KeyA)
		keyChars[k] = [2]rune{lower, lower - 'a' + 'A'}
	}
}

// Char returns the character the key types with the given shift state.
func (k KeyCode) Char(shift bool) (rune, bool) {
	if k >= keyCodeCount {
		return 0, false
	}
	idx := 0
	if shift {
		idx = 1
	}
	ch := keyChars[k][idx]
	return ch, ch != 0
}

var keyNames = [keyCodeCount]string{
	KeyUnknown:      "Unknown",
	KeySpace:        "Space",
	KeyMinus:        "Minus",
	KeyEqual:        "Equal",
	KeyLeftBracket:  "LeftBracket",
	KeyRightBracket: "RightBracket",
	KeyBackslash:    "Backslash",
	KeySemicolon:    "Semicolon",
	KeyQuote:        "Quote",
	KeyBacktick:     "Backtick",
	KeyComma:        "Comma",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeyEnter:        "Enter",
	KeyBackspace:    "Backspace",
	KeyTab:          "Tab",
	KeyEscape:       "Escape",
	KeyShift:        "Shift",
	KeyControl:      "Control",
	KeyAlt:          "Alt",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyDelete:       "Delete",
}

func (k KeyCode) String() string {
	switch {
	case k >= keyCodeCount:
		return "Unknown"
	case k >= KeyA && k <= KeyZ:
		return string('A' + rune(k-KeyA))
	case k >= Key0 && k <= Key9:
		return string('0' + rune(k-Key0))
	}
	return keyNames[k]
}
