package cli

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every TUI binding. Bindings below Quit only apply while no
// input has focus.
type keyMap struct {
	Interrupt    key.Binding
	Next         key.Binding
	Back         key.Binding
	ToggleMode   key.Binding
	Blur         key.Binding
	Cycle        key.Binding
	Submit       key.Binding
	SubmitScript key.Binding

	Quit     key.Binding
	Left     key.Binding
	Right    key.Binding
	Jump     key.Binding
	Focus    key.Binding
	Resubmit key.Binding
	Dismiss  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Interrupt:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "退出")),
		Next:         key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "下一步")),
		Back:         key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "上一步")),
		ToggleMode:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "切换提交方式")),
		Blur:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "退出输入")),
		Cycle:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "切换输入框")),
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "提交")),
		SubmitScript: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "提交脚本")),

		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "退出")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "上一阶段")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "下一阶段")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"), key.WithHelp("1-8", "跳转")),
		Focus:    key.NewBinding(key.WithKeys("i", "tab"), key.WithHelp("i", "输入")),
		Resubmit: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "重新提交")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "清除提示")),
	}
}
