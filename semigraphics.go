package stackview

// Semigraphics used by the built-in primitives.
const (
	SemigraphicsHorizontalEllipsis = '…' // …

	BoxDrawingsLightHorizontal      = '─' // ─
	BoxDrawingsLightVertical        = '│' // │
	BoxDrawingsLightDownAndRight    = '┌' // ┌
	BoxDrawingsLightDownAndLeft     = '┐' // ┐
	BoxDrawingsLightUpAndRight      = '└' // └
	BoxDrawingsLightUpAndLeft       = '┘' // ┘
	BoxDrawingsLightArcDownAndRight = '╭' // ╭
	BoxDrawingsLightArcDownAndLeft  = '╮' // ╮
	BoxDrawingsLightArcUpAndLeft    = '╯' // ╯
	BoxDrawingsLightArcUpAndRight   = '╰' // ╰

	BlockUpperHalfBlock = '▀' // ▀
	BlockLowerHalfBlock = '▄' // ▄
	BlockFullBlock      = '█' // █
	BlockLightShade     = '░' // ░
)
