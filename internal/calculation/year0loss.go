package calculation

// Year0LossCurve is the predefined worst-case market curve: a severe loss in
// year 0 followed by further dips at years 12, 26 and 37, with the
// intervening years averaging out near the long-run market rate. It is kept
// as a named dataset so tests and alternative scenarios can substitute
// their own curve.
var Year0LossCurve = []float64{
	-0.426, 0.1187, 0.213, 0.213, 0.0906842,
	0.232684, 0.242684, 0.132684, 0.146684, 0.114684,
	0.0826842, 0.110684, -0.237, 0.1185, 0.1185,
	0.0926842, 0.176684, 0.138684, 0.200684, 0.218684,
	0.140684, 0.122684, 0.0726842, 0.0706842, 0.220684,
	0.190684, -0.312, 0.156, 0.156, 0.144684,
	0.0786842, 0.150684, 0.148684, 0.136684, 0.218684,
	0.0526842, 0.236684, -0.321, 0.136684, 0.1605,
	0.1605, 0.246684, 0.232684, 0.240684, 0.124684,
	0.0926842, 0.242684, 0.236684, 0.130684, 0.216684,
}
