package result

const (
	ArgumentValidation = "[pre-launch]: invalid launch arguments"
	ParamsRender       = "[pre-launch]: failed to print the experiment parameters"
	RequestBuild       = "[pre-launch]: failed to build the launch request"
	LaunchRequest      = "[launch]: failed to launch the experiment"
)
