package session

// Task 登录后菜单中的一项操作
type Task string

const (
	TaskNone          Task = ""
	TaskAddRestaurant Task = "add_restaurant"
	TaskAddReview     Task = "add_review"
	TaskViewReviews   Task = "view_reviews"
	TaskEditReview    Task = "edit_review"
	TaskDeleteReview  Task = "delete_review"
	TaskViewMap       Task = "view_map"
)

// Tasks 菜单顺序
var Tasks = []Task{
	TaskAddRestaurant,
	TaskAddReview,
	TaskViewReviews,
	TaskEditReview,
	TaskDeleteReview,
	TaskViewMap,
}

var taskPaths = map[Task]string{
	TaskAddRestaurant: "/panel/restaurants/new",
	TaskAddReview:     "/panel/reviews/new",
	TaskViewReviews:   "/panel/reviews",
	TaskEditReview:    "/panel/reviews/edit",
	TaskDeleteReview:  "/panel/reviews/delete",
	TaskViewMap:       "/panel/map",
}

var taskLabels = map[Task]string{
	TaskAddRestaurant: "Add Restaurant",
	TaskAddReview:     "Add Review",
	TaskViewReviews:   "View Reviews",
	TaskEditReview:    "Edit Review",
	TaskDeleteReview:  "Delete Review",
	TaskViewMap:       "View Map",
}

// ParseTask 未知取值返回 TaskNone
func ParseTask(s string) Task {
	t := Task(s)
	if _, ok := taskPaths[t]; ok {
		return t
	}
	return TaskNone
}

func (t Task) Path() string {
	return taskPaths[t]
}

func (t Task) Label() string {
	return taskLabels[t]
}
