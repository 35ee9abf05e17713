package i18n

// Success message keys. Error messages are keyed by the stable wire
// error codes instead, so each code maps to exactly one canonical
// message per locale.
const (
	KeySuccess           = "SUCCESS"
	KeyTodoCreated       = "TODO_CREATED"
	KeyTodoUpdated       = "TODO_UPDATED"
	KeyTodoDeleted       = "TODO_DELETED"
	KeyTodoRetrieved     = "TODO_RETRIEVED"
	KeyTodoListRetrieved = "TODO_LIST_RETRIEVED"
	KeyTodoToggled       = "TODO_TOGGLED"
	KeyUserCreated       = "USER_CREATED"
	KeyUserUpdated       = "USER_UPDATED"
	KeyUserDeleted       = "USER_DELETED"
	KeyUserRetrieved     = "USER_RETRIEVED"
	KeyUserListRetrieved = "USER_LIST_RETRIEVED"
	KeyLoginSuccess      = "LOGIN_SUCCESS"
	KeyOTPSent           = "OTP_SENT"
	KeyOTPVerified       = "OTP_VERIFIED"
	KeyOTPResent         = "OTP_RESENT"
)

var catalog = map[Locale]map[Type]map[string]string{
	LocaleKO: {
		TypeSuccess: {
			KeySuccess:           "성공",
			KeyTodoCreated:       "할 일이 생성되었습니다",
			KeyTodoUpdated:       "할 일이 수정되었습니다",
			KeyTodoDeleted:       "할 일이 삭제되었습니다",
			KeyTodoRetrieved:     "할 일을 조회했습니다",
			KeyTodoListRetrieved: "할 일 목록을 조회했습니다",
			KeyTodoToggled:       "할 일 상태가 변경되었습니다",
			KeyUserCreated:       "사용자가 생성되었습니다",
			KeyUserUpdated:       "사용자 정보가 수정되었습니다",
			KeyUserDeleted:       "사용자가 삭제되었습니다",
			KeyUserRetrieved:     "사용자를 조회했습니다",
			KeyUserListRetrieved: "사용자 목록을 조회했습니다",
			KeyLoginSuccess:      "로그인에 성공했습니다",
			KeyOTPSent:           "인증 코드가 전송되었습니다",
			KeyOTPVerified:       "인증 코드가 확인되었습니다",
			KeyOTPResent:         "인증 코드가 재전송되었습니다",
		},
		TypeError: {
			"E404T001": "할 일을 찾을 수 없습니다",
			"E422T001": "입력 데이터가 올바르지 않습니다",
			"E500T001": "서버 내부 오류가 발생했습니다",
			"E500T002": "데이터베이스 오류가 발생했습니다",
			"E400T001": "유효하지 않은 데이터입니다",
			"E400T002": "제목이 올바르지 않습니다",
			"E400T003": "우선순위가 올바르지 않습니다",
			"E404U001": "사용자를 찾을 수 없습니다",
			"E409U001": "이미 존재하는 사용자입니다",
			"E401U001": "인증에 실패했습니다",
			"E404O001": "인증 코드를 찾을 수 없거나 이미 사용되었습니다",
			"E400O001": "인증 코드가 일치하지 않습니다",
			"E400O002": "인증 코드가 만료되었습니다",
		},
	},
	LocaleEN: {
		TypeSuccess: {
			KeySuccess:           "Success",
			KeyTodoCreated:       "Todo created successfully",
			KeyTodoUpdated:       "Todo updated successfully",
			KeyTodoDeleted:       "Todo deleted successfully",
			KeyTodoRetrieved:     "Todo retrieved successfully",
			KeyTodoListRetrieved: "Todo list retrieved successfully",
			KeyTodoToggled:       "Todo status toggled successfully",
			KeyUserCreated:       "User created successfully",
			KeyUserUpdated:       "User updated successfully",
			KeyUserDeleted:       "User deleted successfully",
			KeyUserRetrieved:     "User retrieved successfully",
			KeyUserListRetrieved: "User list retrieved successfully",
			KeyLoginSuccess:      "Login successful",
			KeyOTPSent:           "OTP sent successfully",
			KeyOTPVerified:       "OTP verified successfully",
			KeyOTPResent:         "OTP resent successfully",
		},
		TypeError: {
			"E400T001": "Invalid data",
			"E400T002": "Invalid title",
			"E400T003": "Invalid priority",
			"E400T004": "Invalid status",
			"E401T001": "Unauthorized",
			"E403T001": "Forbidden",
			"E404T001": "Todo not found",
			"E409T001": "Todo already exists",
			"E422T001": "Invalid input data",
			"E422T002": "Invalid request format",
			"E500T001": "Internal server error",
			"E500T002": "Database error",
			"E503T001": "Service is under maintenance",
			"E400U001": "Invalid data",
			"E401U001": "Incorrect username or password",
			"E403U001": "Forbidden",
			"E404U001": "User not found",
			"E409U001": "User already exists",
			"E422U001": "Invalid input data",
			"E500U001": "Internal server error",
			"E500U002": "Database error",
			"E400O001": "The provided OTP is incorrect",
			"E400O002": "OTP has expired",
			"E404O001": "OTP not found or already used",
		},
	},
}
