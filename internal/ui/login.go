package ui

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type loginField struct {
	label       string
	placeholder string
	value       string
	secret      bool
}

// LoginScreen asks for Jellyfin server credentials before the reel can load
// a server library.
type LoginScreen struct {
	fields     [3]loginField
	fieldIndex int // 0=server, 1=user, 2=pass, 3=connect button

	// Connect runs on a background goroutine with the entered credentials.
	Connect func(server, user, pass string) error
	// OnConnected runs on the game goroutine after Connect succeeded.
	OnConnected func()

	mu        sync.Mutex
	busy      bool
	errMsg    string
	connected bool
}

func NewLoginScreen(serverURL, username string) *LoginScreen {
	ls := &LoginScreen{}
	ls.fields = [3]loginField{
		{label: "Server URL", placeholder: "https://jellyfin.example.com", value: serverURL},
		{label: "Username", placeholder: "username", value: username},
		{label: "Password", placeholder: "password", secret: true},
	}
	if serverURL != "" {
		ls.fieldIndex = 1
		if username != "" {
			ls.fieldIndex = 2
		}
	}
	return ls
}

func (ls *LoginScreen) Name() string { return "Login" }
func (ls *LoginScreen) OnEnter()     {}
func (ls *LoginScreen) OnExit()      {}

func (ls *LoginScreen) Update() (*ScreenTransition, error) {
	ls.mu.Lock()
	busy, connected := ls.busy, ls.connected
	ls.connected = false
	ls.mu.Unlock()

	if connected && ls.OnConnected != nil {
		ls.OnConnected()
		return nil, nil
	}
	if busy {
		return nil, nil
	}

	if ls.fieldIndex < len(ls.fields) {
		f := &ls.fields[ls.fieldIndex]
		f.value = editLine(f.value, ebiten.AppendInputChars(nil),
			inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || inputRepeating(ebiten.KeyBackspace))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ls.fieldIndex = (ls.fieldIndex + 1) % 4
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ls.fieldIndex = (ls.fieldIndex + 3) % 4
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ls.canSubmit() {
		ls.submit()
	}
	return nil, nil
}

func (ls *LoginScreen) canSubmit() bool {
	return strings.TrimSpace(ls.fields[0].value) != "" && strings.TrimSpace(ls.fields[1].value) != ""
}

func (ls *LoginScreen) submit() {
	if ls.Connect == nil {
		return
	}
	server := strings.TrimSpace(ls.fields[0].value)
	user := strings.TrimSpace(ls.fields[1].value)
	pass := ls.fields[2].value

	ls.mu.Lock()
	ls.busy = true
	ls.errMsg = ""
	ls.mu.Unlock()

	go func() {
		err := ls.Connect(server, user, pass)
		ls.mu.Lock()
		defer ls.mu.Unlock()
		ls.busy = false
		if err != nil {
			ls.errMsg = "Login failed: " + err.Error()
			return
		}
		ls.connected = true
	}()
}

// editLine appends typed runes to s and removes the last rune on backspace.
func editLine(s string, typed []rune, backspace bool) string {
	if backspace && s != "" {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return s + string(typed)
}

func (ls *LoginScreen) Draw(dst *ebiten.Image) {
	ls.mu.Lock()
	busy, errMsg := ls.busy, ls.errMsg
	ls.mu.Unlock()

	b := dst.Bounds()
	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy())/2 - 100

	DrawTextCentered(dst, "JellyReel", cx, cy-80, FontSizeTitle+8, ColorPrimary)
	DrawTextCentered(dst, "Connect to your Jellyfin server", cx, cy-40, FontSizeBody, ColorTextSecondary)

	fieldW := float32(400)
	fieldH := float32(44)
	startY := float32(cy)

	for i, f := range ls.fields {
		fy := startY + float32(i)*70
		fx := float32(cx) - fieldW/2
		focused := i == ls.fieldIndex

		DrawText(dst, f.label, float64(fx), float64(fy-20), FontSizeSmall, ColorTextSecondary)

		bg := ColorSurface
		if focused {
			bg = ColorSurfaceHover
		}
		vector.DrawFilledRect(dst, fx, fy, fieldW, fieldH, bg, false)
		if focused {
			vector.StrokeRect(dst, fx, fy, fieldW, fieldH, 2, ColorFocusBorder, false)
		}

		value := f.value
		if f.secret {
			value = strings.Repeat("•", utf8.RuneCountInString(value))
		}
		switch {
		case value == "" && !focused:
			DrawText(dst, f.placeholder, float64(fx+10), float64(fy+12), FontSizeBody, ColorTextMuted)
		case focused:
			DrawText(dst, truncateText(value+"│", float64(fieldW-20), FontSizeBody), float64(fx+10), float64(fy+12), FontSizeBody, ColorText)
		default:
			DrawText(dst, truncateText(value, float64(fieldW-20), FontSizeBody), float64(fx+10), float64(fy+12), FontSizeBody, ColorText)
		}
	}

	btnY := startY + 3*70
	btnW, btnH := fieldW, float32(48)
	bx := float32(cx) - btnW/2
	vector.DrawFilledRect(dst, bx, btnY, btnW, btnH, ColorPrimary, false)
	if ls.fieldIndex == 3 {
		vector.StrokeRect(dst, bx, btnY, btnW, btnH, 2, ColorText, false)
	}
	label := "Connect"
	if busy {
		label = "Connecting..."
	}
	DrawTextCentered(dst, label, cx, float64(btnY+btnH/2), FontSizeBody, ColorText)

	if errMsg != "" {
		DrawTextCentered(dst, errMsg, cx, float64(btnY+btnH+30), FontSizeBody, ColorError)
	}
}
